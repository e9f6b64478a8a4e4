package checkoutsessions

import (
	"encoding/json"

	"github.com/paylane/paylane-go/core"
)

// CheckoutSessionRequest is the body of a create-checkout-session call.
type CheckoutSessionRequest struct{ core.Object }

var (
	checkoutSessionRequestProductCart               = core.NewField[[]ProductItem]("CheckoutSessionRequest", "product_cart", core.Required)
	checkoutSessionRequestAllowedPaymentMethodTypes = core.NewField[[]core.Enum[PaymentMethodType]]("CheckoutSessionRequest", "allowed_payment_method_types", core.Nullable)
	checkoutSessionRequestBillingAddress            = core.NewField[BillingAddress]("CheckoutSessionRequest", "billing_address", core.Nullable)
	checkoutSessionRequestBillingCurrency           = core.NewField[core.Enum[Currency]]("CheckoutSessionRequest", "billing_currency", core.Nullable)
	checkoutSessionRequestConfirm                   = core.NewField[bool]("CheckoutSessionRequest", "confirm")
	checkoutSessionRequestCustomer                  = core.NewField[Customer]("CheckoutSessionRequest", "customer", core.Nullable)
	checkoutSessionRequestCustomization             = core.NewField[Customization]("CheckoutSessionRequest", "customization")
	checkoutSessionRequestCustomFields              = core.NewField[[]CustomField]("CheckoutSessionRequest", "custom_fields", core.Nullable)
	checkoutSessionRequestDiscountCode              = core.NewField[string]("CheckoutSessionRequest", "discount_code", core.Nullable)
	checkoutSessionRequestFeatureFlags              = core.NewField[FeatureFlags]("CheckoutSessionRequest", "feature_flags")
	checkoutSessionRequestForce3DS                  = core.NewField[bool]("CheckoutSessionRequest", "force_3ds", core.Nullable)
	checkoutSessionRequestMetadata                  = core.NewField[map[string]string]("CheckoutSessionRequest", "metadata", core.Nullable)
	checkoutSessionRequestProductCollectionID       = core.NewField[string]("CheckoutSessionRequest", "product_collection_id", core.Nullable)
	checkoutSessionRequestReturnURL                 = core.NewField[string]("CheckoutSessionRequest", "return_url", core.Nullable)
	checkoutSessionRequestShowSavedPaymentMethods   = core.NewField[bool]("CheckoutSessionRequest", "show_saved_payment_methods")
	checkoutSessionRequestSubscriptionData          = core.NewField[SubscriptionData]("CheckoutSessionRequest", "subscription_data", core.Nullable)
	checkoutSessionRequestSchema                    = core.NewSchema("CheckoutSessionRequest",
		checkoutSessionRequestProductCart,
		checkoutSessionRequestAllowedPaymentMethodTypes,
		checkoutSessionRequestBillingAddress,
		checkoutSessionRequestBillingCurrency,
		checkoutSessionRequestConfirm,
		checkoutSessionRequestCustomer,
		checkoutSessionRequestCustomization,
		checkoutSessionRequestCustomFields,
		checkoutSessionRequestDiscountCode,
		checkoutSessionRequestFeatureFlags,
		checkoutSessionRequestForce3DS,
		checkoutSessionRequestMetadata,
		checkoutSessionRequestProductCollectionID,
		checkoutSessionRequestReturnURL,
		checkoutSessionRequestShowSavedPaymentMethods,
		checkoutSessionRequestSubscriptionData,
	)
)

// CheckoutSessionRequestParams holds the named arguments of NewCheckoutSessionRequest. Fields left
// unspecified are not written to the wire.
type CheckoutSessionRequestParams struct {
	ProductCart               core.Optional[[]ProductItem]
	AllowedPaymentMethodTypes core.Optional[[]core.Enum[PaymentMethodType]]
	BillingAddress            core.Optional[BillingAddress]
	BillingCurrency           core.Optional[core.Enum[Currency]]
	Confirm                   core.Optional[bool]
	Customer                  core.Optional[Customer]
	Customization             core.Optional[Customization]
	CustomFields              core.Optional[[]CustomField]
	DiscountCode              core.Optional[string]
	FeatureFlags              core.Optional[FeatureFlags]
	Force3DS                  core.Optional[bool]
	Metadata                  core.Optional[map[string]string]
	ProductCollectionID       core.Optional[string]
	ReturnURL                 core.Optional[string]
	ShowSavedPaymentMethods   core.Optional[bool]
	SubscriptionData          core.Optional[SubscriptionData]
}

func NewCheckoutSessionRequest(p CheckoutSessionRequestParams) *CheckoutSessionRequest {
	m := &CheckoutSessionRequest{}
	checkoutSessionRequestProductCart.Assign(&m.Object, p.ProductCart)
	checkoutSessionRequestAllowedPaymentMethodTypes.Assign(&m.Object, p.AllowedPaymentMethodTypes)
	checkoutSessionRequestBillingAddress.Assign(&m.Object, p.BillingAddress)
	checkoutSessionRequestBillingCurrency.Assign(&m.Object, p.BillingCurrency)
	checkoutSessionRequestConfirm.Assign(&m.Object, p.Confirm)
	checkoutSessionRequestCustomer.Assign(&m.Object, p.Customer)
	checkoutSessionRequestCustomization.Assign(&m.Object, p.Customization)
	checkoutSessionRequestCustomFields.Assign(&m.Object, p.CustomFields)
	checkoutSessionRequestDiscountCode.Assign(&m.Object, p.DiscountCode)
	checkoutSessionRequestFeatureFlags.Assign(&m.Object, p.FeatureFlags)
	checkoutSessionRequestForce3DS.Assign(&m.Object, p.Force3DS)
	checkoutSessionRequestMetadata.Assign(&m.Object, p.Metadata)
	checkoutSessionRequestProductCollectionID.Assign(&m.Object, p.ProductCollectionID)
	checkoutSessionRequestReturnURL.Assign(&m.Object, p.ReturnURL)
	checkoutSessionRequestShowSavedPaymentMethods.Assign(&m.Object, p.ShowSavedPaymentMethods)
	checkoutSessionRequestSubscriptionData.Assign(&m.Object, p.SubscriptionData)
	return m
}

func (m *CheckoutSessionRequest) ProductCart() (core.Optional[[]ProductItem], error) {
	return checkoutSessionRequestProductCart.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetProductCart(v []ProductItem) { checkoutSessionRequestProductCart.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) UnsetProductCart() { checkoutSessionRequestProductCart.Unset(&m.Object) }

// AllowedPaymentMethodTypes restricts the methods offered to the customer. The
// provider falls back to its defaults when none of them is available.
func (m *CheckoutSessionRequest) AllowedPaymentMethodTypes() (core.Optional[[]core.Enum[PaymentMethodType]], error) {
	return checkoutSessionRequestAllowedPaymentMethodTypes.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetAllowedPaymentMethodTypes(v []core.Enum[PaymentMethodType]) { checkoutSessionRequestAllowedPaymentMethodTypes.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetAllowedPaymentMethodTypesNull() { checkoutSessionRequestAllowedPaymentMethodTypes.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetAllowedPaymentMethodTypes() { checkoutSessionRequestAllowedPaymentMethodTypes.Unset(&m.Object) }

func (m *CheckoutSessionRequest) BillingAddress() (core.Optional[BillingAddress], error) {
	return checkoutSessionRequestBillingAddress.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetBillingAddress(v BillingAddress) { checkoutSessionRequestBillingAddress.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetBillingAddressNull() { checkoutSessionRequestBillingAddress.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetBillingAddress() { checkoutSessionRequestBillingAddress.Unset(&m.Object) }

func (m *CheckoutSessionRequest) BillingCurrency() (core.Optional[core.Enum[Currency]], error) {
	return checkoutSessionRequestBillingCurrency.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetBillingCurrency(v core.Enum[Currency]) { checkoutSessionRequestBillingCurrency.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetBillingCurrencyNull() { checkoutSessionRequestBillingCurrency.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetBillingCurrency() { checkoutSessionRequestBillingCurrency.Unset(&m.Object) }

// Confirm finalizes the session immediately. It requires a billing address
// and a customer.
func (m *CheckoutSessionRequest) Confirm() (core.Optional[bool], error) {
	return checkoutSessionRequestConfirm.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetConfirm(v bool) { checkoutSessionRequestConfirm.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) UnsetConfirm() { checkoutSessionRequestConfirm.Unset(&m.Object) }

func (m *CheckoutSessionRequest) Customer() (core.Optional[Customer], error) {
	return checkoutSessionRequestCustomer.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetCustomer(v Customer) { checkoutSessionRequestCustomer.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetCustomerNull() { checkoutSessionRequestCustomer.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetCustomer() { checkoutSessionRequestCustomer.Unset(&m.Object) }

func (m *CheckoutSessionRequest) Customization() (core.Optional[Customization], error) {
	return checkoutSessionRequestCustomization.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetCustomization(v Customization) { checkoutSessionRequestCustomization.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) UnsetCustomization() { checkoutSessionRequestCustomization.Unset(&m.Object) }

func (m *CheckoutSessionRequest) CustomFields() (core.Optional[[]CustomField], error) {
	return checkoutSessionRequestCustomFields.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetCustomFields(v []CustomField) { checkoutSessionRequestCustomFields.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetCustomFieldsNull() { checkoutSessionRequestCustomFields.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetCustomFields() { checkoutSessionRequestCustomFields.Unset(&m.Object) }

func (m *CheckoutSessionRequest) DiscountCode() (core.Optional[string], error) {
	return checkoutSessionRequestDiscountCode.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetDiscountCode(v string) { checkoutSessionRequestDiscountCode.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetDiscountCodeNull() { checkoutSessionRequestDiscountCode.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetDiscountCode() { checkoutSessionRequestDiscountCode.Unset(&m.Object) }

func (m *CheckoutSessionRequest) FeatureFlags() (core.Optional[FeatureFlags], error) {
	return checkoutSessionRequestFeatureFlags.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetFeatureFlags(v FeatureFlags) { checkoutSessionRequestFeatureFlags.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) UnsetFeatureFlags() { checkoutSessionRequestFeatureFlags.Unset(&m.Object) }

func (m *CheckoutSessionRequest) Force3DS() (core.Optional[bool], error) {
	return checkoutSessionRequestForce3DS.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetForce3DS(v bool) { checkoutSessionRequestForce3DS.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetForce3DSNull() { checkoutSessionRequestForce3DS.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetForce3DS() { checkoutSessionRequestForce3DS.Unset(&m.Object) }

func (m *CheckoutSessionRequest) Metadata() (core.Optional[map[string]string], error) {
	return checkoutSessionRequestMetadata.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetMetadata(v map[string]string) { checkoutSessionRequestMetadata.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetMetadataNull() { checkoutSessionRequestMetadata.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetMetadata() { checkoutSessionRequestMetadata.Unset(&m.Object) }

func (m *CheckoutSessionRequest) ProductCollectionID() (core.Optional[string], error) {
	return checkoutSessionRequestProductCollectionID.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetProductCollectionID(v string) { checkoutSessionRequestProductCollectionID.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetProductCollectionIDNull() { checkoutSessionRequestProductCollectionID.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetProductCollectionID() { checkoutSessionRequestProductCollectionID.Unset(&m.Object) }

func (m *CheckoutSessionRequest) ReturnURL() (core.Optional[string], error) {
	return checkoutSessionRequestReturnURL.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetReturnURL(v string) { checkoutSessionRequestReturnURL.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetReturnURLNull() { checkoutSessionRequestReturnURL.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetReturnURL() { checkoutSessionRequestReturnURL.Unset(&m.Object) }

func (m *CheckoutSessionRequest) ShowSavedPaymentMethods() (core.Optional[bool], error) {
	return checkoutSessionRequestShowSavedPaymentMethods.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetShowSavedPaymentMethods(v bool) { checkoutSessionRequestShowSavedPaymentMethods.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) UnsetShowSavedPaymentMethods() { checkoutSessionRequestShowSavedPaymentMethods.Unset(&m.Object) }

func (m *CheckoutSessionRequest) SubscriptionData() (core.Optional[SubscriptionData], error) {
	return checkoutSessionRequestSubscriptionData.Get(&m.Object)
}
func (m *CheckoutSessionRequest) SetSubscriptionData(v SubscriptionData) { checkoutSessionRequestSubscriptionData.Set(&m.Object, v) }
func (m *CheckoutSessionRequest) SetSubscriptionDataNull() { checkoutSessionRequestSubscriptionData.SetNull(&m.Object) }
func (m *CheckoutSessionRequest) UnsetSubscriptionData() { checkoutSessionRequestSubscriptionData.Unset(&m.Object) }

func (m *CheckoutSessionRequest) Validate() error { return checkoutSessionRequestSchema.Validate(&m.Object) }
func (m *CheckoutSessionRequest) Clone() *CheckoutSessionRequest { return core.Clone(m) }
func (m *CheckoutSessionRequest) Equal(o *CheckoutSessionRequest) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields CheckoutSessionRequest does not declare.
func (m *CheckoutSessionRequest) AdditionalProperties() map[string]json.RawMessage {
	return checkoutSessionRequestSchema.AdditionalProperties(&m.Object)
}
