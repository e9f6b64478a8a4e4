package checkoutsessions

import (
	"encoding/json"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/paylane/paylane-go/core"
)

// BillingAddress is the customer's billing address. Only the country is required.
type BillingAddress struct{ core.Object }

var (
	billingAddressCountry = core.NewField[core.Enum[CountryCode]]("BillingAddress", "country", core.Required)
	billingAddressCity    = core.NewField[string]("BillingAddress", "city", core.Nullable)
	billingAddressState   = core.NewField[string]("BillingAddress", "state", core.Nullable)
	billingAddressStreet  = core.NewField[string]("BillingAddress", "street", core.Nullable)
	billingAddressZipcode = core.NewField[string]("BillingAddress", "zipcode", core.Nullable)
	billingAddressSchema  = core.NewSchema("BillingAddress",
		billingAddressCountry,
		billingAddressCity,
		billingAddressState,
		billingAddressStreet,
		billingAddressZipcode,
	)
)

// BillingAddressParams holds the named arguments of NewBillingAddress. Fields left
// unspecified are not written to the wire.
type BillingAddressParams struct {
	Country core.Optional[core.Enum[CountryCode]]
	City    core.Optional[string]
	State   core.Optional[string]
	Street  core.Optional[string]
	Zipcode core.Optional[string]
}

func NewBillingAddress(p BillingAddressParams) *BillingAddress {
	m := &BillingAddress{}
	billingAddressCountry.Assign(&m.Object, p.Country)
	billingAddressCity.Assign(&m.Object, p.City)
	billingAddressState.Assign(&m.Object, p.State)
	billingAddressStreet.Assign(&m.Object, p.Street)
	billingAddressZipcode.Assign(&m.Object, p.Zipcode)
	return m
}

func (m *BillingAddress) Country() (core.Optional[core.Enum[CountryCode]], error) {
	return billingAddressCountry.Get(&m.Object)
}
func (m *BillingAddress) SetCountry(v core.Enum[CountryCode]) { billingAddressCountry.Set(&m.Object, v) }
func (m *BillingAddress) UnsetCountry() { billingAddressCountry.Unset(&m.Object) }

func (m *BillingAddress) City() (core.Optional[string], error) {
	return billingAddressCity.Get(&m.Object)
}
func (m *BillingAddress) SetCity(v string) { billingAddressCity.Set(&m.Object, v) }
func (m *BillingAddress) SetCityNull() { billingAddressCity.SetNull(&m.Object) }
func (m *BillingAddress) UnsetCity() { billingAddressCity.Unset(&m.Object) }

func (m *BillingAddress) State() (core.Optional[string], error) {
	return billingAddressState.Get(&m.Object)
}
func (m *BillingAddress) SetState(v string) { billingAddressState.Set(&m.Object, v) }
func (m *BillingAddress) SetStateNull() { billingAddressState.SetNull(&m.Object) }
func (m *BillingAddress) UnsetState() { billingAddressState.Unset(&m.Object) }

func (m *BillingAddress) Street() (core.Optional[string], error) {
	return billingAddressStreet.Get(&m.Object)
}
func (m *BillingAddress) SetStreet(v string) { billingAddressStreet.Set(&m.Object, v) }
func (m *BillingAddress) SetStreetNull() { billingAddressStreet.SetNull(&m.Object) }
func (m *BillingAddress) UnsetStreet() { billingAddressStreet.Unset(&m.Object) }

func (m *BillingAddress) Zipcode() (core.Optional[string], error) {
	return billingAddressZipcode.Get(&m.Object)
}
func (m *BillingAddress) SetZipcode(v string) { billingAddressZipcode.Set(&m.Object, v) }
func (m *BillingAddress) SetZipcodeNull() { billingAddressZipcode.SetNull(&m.Object) }
func (m *BillingAddress) UnsetZipcode() { billingAddressZipcode.Unset(&m.Object) }

func (m *BillingAddress) Validate() error { return billingAddressSchema.Validate(&m.Object) }
func (m *BillingAddress) Clone() *BillingAddress { return core.Clone(m) }
func (m *BillingAddress) Equal(o *BillingAddress) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields BillingAddress does not declare.
func (m *BillingAddress) AdditionalProperties() map[string]json.RawMessage {
	return billingAddressSchema.AdditionalProperties(&m.Object)
}

// Customer identifies the buyer, either by an existing customer id or by
// contact details for a new one.
type Customer struct{ core.Object }

var (
	customerCustomerID  = core.NewField[string]("Customer", "customer_id", core.Nullable)
	customerEmail       = core.NewField[openapi_types.Email]("Customer", "email", core.Nullable)
	customerName        = core.NewField[string]("Customer", "name", core.Nullable)
	customerPhoneNumber = core.NewField[string]("Customer", "phone_number", core.Nullable)
	customerSchema      = core.NewSchema("Customer",
		customerCustomerID,
		customerEmail,
		customerName,
		customerPhoneNumber,
	)

	// customerEmailText writes the email key unvalidated; reads go through customerEmail.
	customerEmailText = core.NewField[string]("Customer", "email", core.Nullable)
)

// CustomerParams holds the named arguments of NewCustomer. Fields left
// unspecified are not written to the wire.
type CustomerParams struct {
	CustomerID  core.Optional[string]
	Email       core.Optional[string]
	Name        core.Optional[string]
	PhoneNumber core.Optional[string]
}

func NewCustomer(p CustomerParams) *Customer {
	m := &Customer{}
	customerCustomerID.Assign(&m.Object, p.CustomerID)
	customerEmailText.Assign(&m.Object, p.Email)
	customerName.Assign(&m.Object, p.Name)
	customerPhoneNumber.Assign(&m.Object, p.PhoneNumber)
	return m
}

func (m *Customer) CustomerID() (core.Optional[string], error) {
	return customerCustomerID.Get(&m.Object)
}
func (m *Customer) SetCustomerID(v string) { customerCustomerID.Set(&m.Object, v) }
func (m *Customer) SetCustomerIDNull() { customerCustomerID.SetNull(&m.Object) }
func (m *Customer) UnsetCustomerID() { customerCustomerID.Unset(&m.Object) }

// Email is validated on read; a malformed address is reported as invalid data
// rather than rejected by SetEmail.
func (m *Customer) Email() (core.Optional[openapi_types.Email], error) {
	return customerEmail.Get(&m.Object)
}
func (m *Customer) SetEmail(v string) { customerEmailText.Set(&m.Object, v) }
func (m *Customer) SetEmailNull() { customerEmail.SetNull(&m.Object) }
func (m *Customer) UnsetEmail() { customerEmail.Unset(&m.Object) }

func (m *Customer) Name() (core.Optional[string], error) { return customerName.Get(&m.Object) }
func (m *Customer) SetName(v string) { customerName.Set(&m.Object, v) }
func (m *Customer) SetNameNull() { customerName.SetNull(&m.Object) }
func (m *Customer) UnsetName() { customerName.Unset(&m.Object) }

func (m *Customer) PhoneNumber() (core.Optional[string], error) {
	return customerPhoneNumber.Get(&m.Object)
}
func (m *Customer) SetPhoneNumber(v string) { customerPhoneNumber.Set(&m.Object, v) }
func (m *Customer) SetPhoneNumberNull() { customerPhoneNumber.SetNull(&m.Object) }
func (m *Customer) UnsetPhoneNumber() { customerPhoneNumber.Unset(&m.Object) }

func (m *Customer) Validate() error { return customerSchema.Validate(&m.Object) }
func (m *Customer) Clone() *Customer { return core.Clone(m) }
func (m *Customer) Equal(o *Customer) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields Customer does not declare.
func (m *Customer) AdditionalProperties() map[string]json.RawMessage {
	return customerSchema.AdditionalProperties(&m.Object)
}
