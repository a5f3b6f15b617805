package model

import (
	"time"

	"wisata_booking/utils"
)

// Booking status axis: pending -> confirmed -> completed, or pending -> cancelled.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment status axis: unpaid -> waiting_confirmation -> paid. paid is terminal.
const (
	PaymentUnpaid              = "unpaid"
	PaymentWaitingConfirmation = "waiting_confirmation"
	PaymentPaid                = "paid"
)

// DisplayState is the single UI-facing state derived from the two axes.
type DisplayState string

const (
	DisplayAwaitingPayment      DisplayState = "AwaitingPayment"
	DisplayAwaitingConfirmation DisplayState = "AwaitingConfirmation"
	DisplayActiveTicket         DisplayState = "ActiveTicket"
	DisplayCompleted            DisplayState = "Completed"
	DisplayCancelled            DisplayState = "Cancelled"
	DisplayUnknown              DisplayState = "Unknown"
)

type Booking struct {
	DTO
	BookingNumber string `gorm:"unique;size:30" json:"bookingNumber"` // BK-<numeric suffix>
	UserId        *uint  `json:"userId,omitempty"`
	User          *User  `gorm:"foreignKey:UserId" json:"-"`
	DestinationId uint   `gorm:"not null;index" json:"destinationId"`
	TicketTypeId  uint   `gorm:"not null" json:"ticketTypeId"`

	// Visitor snapshot taken at booking time, never re-synced to the profile.
	VisitorName  string `gorm:"not null" json:"visitorName"`
	VisitorEmail string `gorm:"not null" json:"visitorEmail"`
	VisitorPhone string `json:"visitorPhone"`

	Quantity        int              `gorm:"not null" json:"quantity"`
	UnitPrice       int64            `gorm:"not null" json:"unitPrice"` // copied from ticket type at creation
	TotalPrice      int64            `gorm:"not null" json:"totalPrice"`
	VisitDate       utils.CustomDate `gorm:"type:date;not null" json:"visitDate"`
	SpecialRequests string           `gorm:"type:text" json:"specialRequests"`

	Status        string `gorm:"default:'pending';not null" json:"status"`
	PaymentStatus string `gorm:"default:'unpaid';not null" json:"paymentStatus"`

	PaymentProofUrl string     `json:"paymentProofUrl,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`

	Destination Destination `gorm:"foreignKey:DestinationId" json:"destination,omitempty"`
	TicketType  TicketType  `gorm:"foreignKey:TicketTypeId" json:"ticketType,omitempty"`
}

// DeriveDisplayState maps the (status, payment_status) pair to the state shown
// everywhere a booking is listed or detailed. Pure: reads only its receiver.
// Cancellation wins regardless of payment status; a booking is an active
// ticket only when it is both paid and confirmed.
func (b Booking) DeriveDisplayState() DisplayState {
	if b.Status == StatusCancelled {
		return DisplayCancelled
	}
	switch b.PaymentStatus {
	case PaymentUnpaid:
		return DisplayAwaitingPayment
	case PaymentWaitingConfirmation:
		return DisplayAwaitingConfirmation
	case PaymentPaid:
		switch b.Status {
		case StatusConfirmed:
			return DisplayActiveTicket
		case StatusCompleted:
			return DisplayCompleted
		}
	}
	return DisplayUnknown
}

type CreateBookingInput struct {
	DestinationId   uint             `json:"destinationId" validate:"required,gt=0"`
	TicketTypeId    uint             `json:"ticketTypeId" validate:"required,gt=0"`
	VisitorName     string           `json:"visitorName" validate:"required"`
	VisitorEmail    string           `json:"visitorEmail" validate:"required,email"`
	VisitorPhone    string           `json:"visitorPhone" validate:"omitempty"`
	Quantity        int              `json:"quantity" validate:"required,gte=1"`
	VisitDate       utils.CustomDate `json:"visitDate" validate:"required"`
	SpecialRequests string           `json:"specialRequests" validate:"omitempty"`
}

type FilterBookingInput struct {
	Pagination
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=unpaid waiting_confirmation paid"`
	DestinationId uint   `json:"destinationId" validate:"omitempty,gt=0"`
	Search        string `json:"search" validate:"omitempty"`
}

type UpdateBookingStatusInput struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=unpaid waiting_confirmation paid"`
}
