package checkoutsessions

import (
	"encoding/json"
	"time"

	"github.com/paylane/paylane-go/core"
)

// CheckoutSessionResponse is returned when a session is created.
type CheckoutSessionResponse struct{ core.Object }

var (
	checkoutSessionResponseSessionID   = core.NewField[string]("CheckoutSessionResponse", "session_id", core.Required)
	checkoutSessionResponseCheckoutURL = core.NewField[string]("CheckoutSessionResponse", "checkout_url", core.Required)
	checkoutSessionResponseSchema      = core.NewSchema("CheckoutSessionResponse",
		checkoutSessionResponseSessionID,
		checkoutSessionResponseCheckoutURL,
	)
)

// CheckoutSessionResponseParams holds the named arguments of NewCheckoutSessionResponse. Fields left
// unspecified are not written to the wire.
type CheckoutSessionResponseParams struct {
	SessionID   core.Optional[string]
	CheckoutURL core.Optional[string]
}

func NewCheckoutSessionResponse(p CheckoutSessionResponseParams) *CheckoutSessionResponse {
	m := &CheckoutSessionResponse{}
	checkoutSessionResponseSessionID.Assign(&m.Object, p.SessionID)
	checkoutSessionResponseCheckoutURL.Assign(&m.Object, p.CheckoutURL)
	return m
}

func (m *CheckoutSessionResponse) SessionID() (core.Optional[string], error) {
	return checkoutSessionResponseSessionID.Get(&m.Object)
}
func (m *CheckoutSessionResponse) SetSessionID(v string) { checkoutSessionResponseSessionID.Set(&m.Object, v) }
func (m *CheckoutSessionResponse) UnsetSessionID() { checkoutSessionResponseSessionID.Unset(&m.Object) }

// CheckoutURL is the hosted page the customer is redirected to.
func (m *CheckoutSessionResponse) CheckoutURL() (core.Optional[string], error) {
	return checkoutSessionResponseCheckoutURL.Get(&m.Object)
}
func (m *CheckoutSessionResponse) SetCheckoutURL(v string) { checkoutSessionResponseCheckoutURL.Set(&m.Object, v) }
func (m *CheckoutSessionResponse) UnsetCheckoutURL() { checkoutSessionResponseCheckoutURL.Unset(&m.Object) }

func (m *CheckoutSessionResponse) Validate() error { return checkoutSessionResponseSchema.Validate(&m.Object) }
func (m *CheckoutSessionResponse) Clone() *CheckoutSessionResponse { return core.Clone(m) }
func (m *CheckoutSessionResponse) Equal(o *CheckoutSessionResponse) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields CheckoutSessionResponse does not declare.
func (m *CheckoutSessionResponse) AdditionalProperties() map[string]json.RawMessage {
	return checkoutSessionResponseSchema.AdditionalProperties(&m.Object)
}

// CheckoutSessionStatus is the current state of a checkout session.
type CheckoutSessionStatus struct{ core.Object }

var (
	checkoutSessionStatusID            = core.NewField[string]("CheckoutSessionStatus", "id", core.Required)
	checkoutSessionStatusCreatedAt     = core.NewField[time.Time]("CheckoutSessionStatus", "created_at", core.Required)
	checkoutSessionStatusCustomerEmail = core.NewField[string]("CheckoutSessionStatus", "customer_email", core.Nullable)
	checkoutSessionStatusCustomerName  = core.NewField[string]("CheckoutSessionStatus", "customer_name", core.Nullable)
	checkoutSessionStatusPaymentID     = core.NewField[string]("CheckoutSessionStatus", "payment_id", core.Nullable)
	checkoutSessionStatusPaymentStatus = core.NewField[core.Enum[IntentStatus]]("CheckoutSessionStatus", "payment_status", core.Nullable)
	checkoutSessionStatusSchema        = core.NewSchema("CheckoutSessionStatus",
		checkoutSessionStatusID,
		checkoutSessionStatusCreatedAt,
		checkoutSessionStatusCustomerEmail,
		checkoutSessionStatusCustomerName,
		checkoutSessionStatusPaymentID,
		checkoutSessionStatusPaymentStatus,
	)
)

// CheckoutSessionStatusParams holds the named arguments of NewCheckoutSessionStatus. Fields left
// unspecified are not written to the wire.
type CheckoutSessionStatusParams struct {
	ID            core.Optional[string]
	CreatedAt     core.Optional[time.Time]
	CustomerEmail core.Optional[string]
	CustomerName  core.Optional[string]
	PaymentID     core.Optional[string]
	PaymentStatus core.Optional[core.Enum[IntentStatus]]
}

func NewCheckoutSessionStatus(p CheckoutSessionStatusParams) *CheckoutSessionStatus {
	m := &CheckoutSessionStatus{}
	checkoutSessionStatusID.Assign(&m.Object, p.ID)
	checkoutSessionStatusCreatedAt.Assign(&m.Object, p.CreatedAt)
	checkoutSessionStatusCustomerEmail.Assign(&m.Object, p.CustomerEmail)
	checkoutSessionStatusCustomerName.Assign(&m.Object, p.CustomerName)
	checkoutSessionStatusPaymentID.Assign(&m.Object, p.PaymentID)
	checkoutSessionStatusPaymentStatus.Assign(&m.Object, p.PaymentStatus)
	return m
}

func (m *CheckoutSessionStatus) ID() (core.Optional[string], error) {
	return checkoutSessionStatusID.Get(&m.Object)
}
func (m *CheckoutSessionStatus) SetID(v string) { checkoutSessionStatusID.Set(&m.Object, v) }
func (m *CheckoutSessionStatus) UnsetID() { checkoutSessionStatusID.Unset(&m.Object) }

func (m *CheckoutSessionStatus) CreatedAt() (core.Optional[time.Time], error) {
	return checkoutSessionStatusCreatedAt.Get(&m.Object)
}
func (m *CheckoutSessionStatus) SetCreatedAt(v time.Time) { checkoutSessionStatusCreatedAt.Set(&m.Object, v) }
func (m *CheckoutSessionStatus) UnsetCreatedAt() { checkoutSessionStatusCreatedAt.Unset(&m.Object) }

func (m *CheckoutSessionStatus) CustomerEmail() (core.Optional[string], error) {
	return checkoutSessionStatusCustomerEmail.Get(&m.Object)
}
func (m *CheckoutSessionStatus) SetCustomerEmail(v string) { checkoutSessionStatusCustomerEmail.Set(&m.Object, v) }
func (m *CheckoutSessionStatus) SetCustomerEmailNull() { checkoutSessionStatusCustomerEmail.SetNull(&m.Object) }
func (m *CheckoutSessionStatus) UnsetCustomerEmail() { checkoutSessionStatusCustomerEmail.Unset(&m.Object) }

func (m *CheckoutSessionStatus) CustomerName() (core.Optional[string], error) {
	return checkoutSessionStatusCustomerName.Get(&m.Object)
}
func (m *CheckoutSessionStatus) SetCustomerName(v string) { checkoutSessionStatusCustomerName.Set(&m.Object, v) }
func (m *CheckoutSessionStatus) SetCustomerNameNull() { checkoutSessionStatusCustomerName.SetNull(&m.Object) }
func (m *CheckoutSessionStatus) UnsetCustomerName() { checkoutSessionStatusCustomerName.Unset(&m.Object) }

func (m *CheckoutSessionStatus) PaymentID() (core.Optional[string], error) {
	return checkoutSessionStatusPaymentID.Get(&m.Object)
}
func (m *CheckoutSessionStatus) SetPaymentID(v string) { checkoutSessionStatusPaymentID.Set(&m.Object, v) }
func (m *CheckoutSessionStatus) SetPaymentIDNull() { checkoutSessionStatusPaymentID.SetNull(&m.Object) }
func (m *CheckoutSessionStatus) UnsetPaymentID() { checkoutSessionStatusPaymentID.Unset(&m.Object) }

func (m *CheckoutSessionStatus) PaymentStatus() (core.Optional[core.Enum[IntentStatus]], error) {
	return checkoutSessionStatusPaymentStatus.Get(&m.Object)
}
func (m *CheckoutSessionStatus) SetPaymentStatus(v core.Enum[IntentStatus]) { checkoutSessionStatusPaymentStatus.Set(&m.Object, v) }
func (m *CheckoutSessionStatus) SetPaymentStatusNull() { checkoutSessionStatusPaymentStatus.SetNull(&m.Object) }
func (m *CheckoutSessionStatus) UnsetPaymentStatus() { checkoutSessionStatusPaymentStatus.Unset(&m.Object) }

func (m *CheckoutSessionStatus) Validate() error { return checkoutSessionStatusSchema.Validate(&m.Object) }
func (m *CheckoutSessionStatus) Clone() *CheckoutSessionStatus { return core.Clone(m) }
func (m *CheckoutSessionStatus) Equal(o *CheckoutSessionStatus) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields CheckoutSessionStatus does not declare.
func (m *CheckoutSessionStatus) AdditionalProperties() map[string]json.RawMessage {
	return checkoutSessionStatusSchema.AdditionalProperties(&m.Object)
}
