package model

import "time"

// CheckoutSession records one attempt to pay a booking through the hosted
// checkout provider. The booking itself stays pending/unpaid until the
// provider redirects back.
const (
	SessionPending   = "PENDING"
	SessionPaid      = "PAID"
	SessionCancelled = "CANCELLED"
	SessionExpired   = "EXPIRED"
)

type CheckoutSession struct {
	DTO
	BookingId  uint      `gorm:"not null;index" json:"bookingId"`
	SessionRef string    `gorm:"unique;size:40" json:"sessionRef"`
	Amount     int64     `gorm:"not null" json:"amount"`
	Status     string    `gorm:"default:PENDING" json:"status"`
	ExpiresAt  time.Time `gorm:"not null" json:"expiresAt"`

	Booking Booking `gorm:"foreignKey:BookingId" json:"-"`
}

type CheckoutConfig struct {
	MerchantCode string
	HashSecret   string
	BaseURL      string
	ReturnURL    string
	NotifyURL    string
}

// CheckoutRequest restates the booking metadata the provider renders on its
// hosted page.
type CheckoutRequest struct {
	SessionRef    string `json:"sessionRef"`
	BookingNumber string `json:"bookingNumber"`
	Amount        int64  `json:"amount"`
	Destination   string `json:"destination"`
	TicketName    string `json:"ticketName"`
	Quantity      int    `json:"quantity"`
	VisitDate     string `json:"visitDate"`
	VisitorName   string `json:"visitorName"`
}

type CheckoutResult struct {
	IsSuccess  bool   `json:"isSuccess"`
	SessionRef string `json:"sessionRef"`
	Amount     int64  `json:"amount"`
	Outcome    string `json:"outcome"` // success | cancel
	Message    string `json:"message"`
}
