package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDisplayState(t *testing.T) {
	cases := []struct {
		name          string
		status        string
		paymentStatus string
		want          DisplayState
	}{
		{"fresh booking awaits payment", StatusPending, PaymentUnpaid, DisplayAwaitingPayment},
		{"uploaded proof awaits review", StatusPending, PaymentWaitingConfirmation, DisplayAwaitingConfirmation},
		{"paid and confirmed is an active ticket", StatusConfirmed, PaymentPaid, DisplayActiveTicket},
		{"paid and completed stays visible as completed", StatusCompleted, PaymentPaid, DisplayCompleted},
		{"cancelled unpaid", StatusCancelled, PaymentUnpaid, DisplayCancelled},
		{"cancelled wins over waiting confirmation", StatusCancelled, PaymentWaitingConfirmation, DisplayCancelled},
		{"cancelled wins over paid", StatusCancelled, PaymentPaid, DisplayCancelled},
		{"paid but still pending is not a ticket", StatusPending, PaymentPaid, DisplayUnknown},
		{"confirmed but unpaid still awaits payment", StatusConfirmed, PaymentUnpaid, DisplayAwaitingPayment},
		{"completed but unpaid still awaits payment", StatusCompleted, PaymentUnpaid, DisplayAwaitingPayment},
		{"empty pair falls through to unknown", "", "", DisplayUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{Status: tc.status, PaymentStatus: tc.paymentStatus}
			assert.Equal(t, tc.want, b.DeriveDisplayState())
		})
	}
}

func TestDeriveDisplayStateIsPure(t *testing.T) {
	b := Booking{Status: StatusConfirmed, PaymentStatus: PaymentPaid}
	before := b

	_ = b.DeriveDisplayState()
	_ = b.DeriveDisplayState()

	assert.Equal(t, before, b)
}
