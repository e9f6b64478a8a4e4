package domain

import "time"

// PaymentStatus mirrors the provider's payment intent status strings.
type PaymentStatus string

const (
	PaymentStatusRequiresPaymentMethod PaymentStatus = "requires_payment_method"
	PaymentStatusSucceeded             PaymentStatus = "succeeded"
	PaymentStatusCancelled             PaymentStatus = "cancelled"
)

// Session is a checkout session as the fake provider tracks it.
type Session struct {
	ID        SessionID
	Principal PrincipalID

	// Request is the create body exactly as accepted, kept for inspection.
	Request []byte

	CustomerEmail *string
	CustomerName  *string
	PaymentID     *string
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
