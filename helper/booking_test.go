package helper

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"wisata_booking/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func expectBookingUpdate(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func pendingBooking() *model.Booking {
	return &model.Booking{
		DTO:           model.DTO{ID: 1},
		BookingNumber: "BK-1756700000000",
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentUnpaid,
	}
}

func TestGenerateBookingNumber(t *testing.T) {
	number := GenerateBookingNumber()

	require.True(t, strings.HasPrefix(number, "BK-"))

	suffix := strings.TrimPrefix(number, "BK-")
	ms, err := strconv.ParseInt(suffix, 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), ms, 5000)
}

func TestTicketCode(t *testing.T) {
	assert.Equal(t, "WJL-1756700000000", TicketCode("BK-1756700000000"))
}

func TestComputeTotalPrice(t *testing.T) {
	assert.Equal(t, int64(100000), ComputeTotalPrice(50000, 2))
	assert.Equal(t, int64(50000), ComputeTotalPrice(50000, 1))
	assert.Equal(t, int64(0), ComputeTotalPrice(50000, 0))
}

func TestMarkPaid(t *testing.T) {
	t.Run("confirms and pays a pending booking", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()

		expectBookingUpdate(mock)

		err := MarkPaid(db, booking)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.Equal(t, model.PaymentPaid, booking.PaymentStatus)
		assert.NotNil(t, booking.PaidAt)
		assert.Equal(t, model.DisplayActiveTicket, booking.DeriveDisplayState())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("safe to re-apply on a reloaded return", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.Status = model.StatusConfirmed
		booking.PaymentStatus = model.PaymentPaid

		expectBookingUpdate(mock)

		err := MarkPaid(db, booking)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.Equal(t, model.PaymentPaid, booking.PaymentStatus)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a cancelled booking without writing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.Status = model.StatusCancelled

		err := MarkPaid(db, booking)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Equal(t, model.StatusCancelled, booking.Status)
		assert.Nil(t, booking.PaidAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkCancelled(t *testing.T) {
	t.Run("cancels and leaves payment status untouched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.PaymentStatus = model.PaymentWaitingConfirmation

		expectBookingUpdate(mock)

		err := MarkCancelled(db, booking)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, booking.Status)
		assert.Equal(t, model.PaymentWaitingConfirmation, booking.PaymentStatus)
		assert.NotNil(t, booking.CancelledAt)
		assert.Equal(t, model.DisplayCancelled, booking.DeriveDisplayState())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkWaitingConfirmation(t *testing.T) {
	t.Run("records the proof and moves to waiting", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()

		expectBookingUpdate(mock)

		err := MarkWaitingConfirmation(db, booking, "https://cdn.example.com/proofs/bk1.jpg")
		require.NoError(t, err)
		assert.Equal(t, model.PaymentWaitingConfirmation, booking.PaymentStatus)
		assert.Equal(t, "https://cdn.example.com/proofs/bk1.jpg", booking.PaymentProofUrl)
		assert.Equal(t, model.DisplayAwaitingConfirmation, booking.DeriveDisplayState())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a cancelled booking", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.Status = model.StatusCancelled

		err := MarkWaitingConfirmation(db, booking, "https://cdn.example.com/proofs/bk1.jpg")
		assert.ErrorIs(t, err, ErrAlreadyCancelled)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an already paid booking", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.Status = model.StatusConfirmed
		booking.PaymentStatus = model.PaymentPaid

		err := MarkWaitingConfirmation(db, booking, "https://cdn.example.com/proofs/bk1.jpg")
		assert.Error(t, err)
		assert.Equal(t, model.PaymentPaid, booking.PaymentStatus)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkProofRejected(t *testing.T) {
	t.Run("sends a reviewed proof back to unpaid", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.PaymentStatus = model.PaymentWaitingConfirmation

		expectBookingUpdate(mock)

		err := MarkProofRejected(db, booking)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentUnpaid, booking.PaymentStatus)
		assert.Equal(t, model.DisplayAwaitingPayment, booking.DeriveDisplayState())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects when no proof is awaiting review", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()

		err := MarkProofRejected(db, booking)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkCompleted(t *testing.T) {
	t.Run("completes a paid confirmed booking", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()
		booking.Status = model.StatusConfirmed
		booking.PaymentStatus = model.PaymentPaid

		expectBookingUpdate(mock)

		err := MarkCompleted(db, booking)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, booking.Status)
		assert.Equal(t, model.DisplayCompleted, booking.DeriveDisplayState())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unpaid booking", func(t *testing.T) {
		db, mock := setupMockDB(t)
		booking := pendingBooking()

		err := MarkCompleted(db, booking)
		assert.Error(t, err)
		assert.Equal(t, model.StatusPending, booking.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
