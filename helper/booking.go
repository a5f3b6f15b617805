package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wisata_booking/model"

	"gorm.io/gorm"
)

// All writes to the (status, payment_status) pair go through the Mark*
// functions below so the pairing invariant lives in one place instead of
// being re-derived in every handler.

var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// GenerateBookingNumber builds a time-based booking number, BK-<suffix>.
// Millisecond granularity is enough to avoid collisions for one insert per
// interaction; the unique index on the column backs it up.
func GenerateBookingNumber() string {
	return fmt.Sprintf("BK-%d", time.Now().UnixMilli())
}

// TicketCode is the booking number as printed on the e-ticket (WJL- prefix).
func TicketCode(bookingNumber string) string {
	return "WJL-" + strings.TrimPrefix(bookingNumber, "BK-")
}

// ComputeTotalPrice copies the ticket type price at booking time. The stored
// total is never recomputed afterwards, even if the ticket type changes.
func ComputeTotalPrice(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// MarkPaid sets payment_status=paid together with status=confirmed. Safe to
// re-apply on a reloaded return route: setting the same terminal pair again
// changes nothing.
func MarkPaid(db *gorm.DB, booking *model.Booking) error {
	if booking.Status == model.StatusCancelled {
		return ErrAlreadyCancelled
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":         model.StatusConfirmed,
		"payment_status": model.PaymentPaid,
		"paid_at":        now,
	}
	if err := db.Model(booking).Updates(updates).Error; err != nil {
		return err
	}

	booking.Status = model.StatusConfirmed
	booking.PaymentStatus = model.PaymentPaid
	booking.PaidAt = &now

	PublishBookingStatus(booking)
	return nil
}

// MarkCancelled sets status=cancelled and leaves payment_status untouched.
func MarkCancelled(db *gorm.DB, booking *model.Booking) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       model.StatusCancelled,
		"cancelled_at": now,
	}
	if err := db.Model(booking).Updates(updates).Error; err != nil {
		return err
	}

	booking.Status = model.StatusCancelled
	booking.CancelledAt = &now

	PublishBookingStatus(booking)
	return nil
}

// MarkWaitingConfirmation records an uploaded payment proof pending review.
func MarkWaitingConfirmation(db *gorm.DB, booking *model.Booking, proofUrl string) error {
	if booking.Status == model.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if booking.PaymentStatus == model.PaymentPaid {
		return errors.New("booking is already paid")
	}

	updates := map[string]interface{}{
		"payment_status":    model.PaymentWaitingConfirmation,
		"payment_proof_url": proofUrl,
	}
	if err := db.Model(booking).Updates(updates).Error; err != nil {
		return err
	}

	booking.PaymentStatus = model.PaymentWaitingConfirmation
	booking.PaymentProofUrl = proofUrl

	PublishBookingStatus(booking)
	return nil
}

// MarkProofRejected sends a reviewed proof back to unpaid so the visitor can
// retry either path.
func MarkProofRejected(db *gorm.DB, booking *model.Booking) error {
	if booking.PaymentStatus != model.PaymentWaitingConfirmation {
		return errors.New("booking has no proof awaiting review")
	}

	if err := db.Model(booking).Update("payment_status", model.PaymentUnpaid).Error; err != nil {
		return err
	}

	booking.PaymentStatus = model.PaymentUnpaid

	PublishBookingStatus(booking)
	return nil
}

// MarkCompleted closes out a paid, confirmed booking after the visit date.
func MarkCompleted(db *gorm.DB, booking *model.Booking) error {
	if booking.Status != model.StatusConfirmed || booking.PaymentStatus != model.PaymentPaid {
		return errors.New("only paid, confirmed bookings can be completed")
	}

	if err := db.Model(booking).Update("status", model.StatusCompleted).Error; err != nil {
		return err
	}

	booking.Status = model.StatusCompleted

	PublishBookingStatus(booking)
	return nil
}
