package checkoutsessions

import (
	"encoding/json"

	"github.com/paylane/paylane-go/core"
)

// SubscriptionData configures subscriptions created by the session.
type SubscriptionData struct{ core.Object }

var (
	subscriptionDataOnDemand        = core.NewField[OnDemandSubscription]("SubscriptionData", "on_demand", core.Nullable)
	subscriptionDataTrialPeriodDays = core.NewField[int32]("SubscriptionData", "trial_period_days", core.Nullable)
	subscriptionDataSchema          = core.NewSchema("SubscriptionData",
		subscriptionDataOnDemand,
		subscriptionDataTrialPeriodDays,
	)
)

// SubscriptionDataParams holds the named arguments of NewSubscriptionData. Fields left
// unspecified are not written to the wire.
type SubscriptionDataParams struct {
	OnDemand        core.Optional[OnDemandSubscription]
	TrialPeriodDays core.Optional[int32]
}

func NewSubscriptionData(p SubscriptionDataParams) *SubscriptionData {
	m := &SubscriptionData{}
	subscriptionDataOnDemand.Assign(&m.Object, p.OnDemand)
	subscriptionDataTrialPeriodDays.Assign(&m.Object, p.TrialPeriodDays)
	return m
}

func (m *SubscriptionData) OnDemand() (core.Optional[OnDemandSubscription], error) {
	return subscriptionDataOnDemand.Get(&m.Object)
}
func (m *SubscriptionData) SetOnDemand(v OnDemandSubscription) { subscriptionDataOnDemand.Set(&m.Object, v) }
func (m *SubscriptionData) SetOnDemandNull() { subscriptionDataOnDemand.SetNull(&m.Object) }
func (m *SubscriptionData) UnsetOnDemand() { subscriptionDataOnDemand.Unset(&m.Object) }

// TrialPeriodDays overrides the product's trial period.
func (m *SubscriptionData) TrialPeriodDays() (core.Optional[int32], error) {
	return subscriptionDataTrialPeriodDays.Get(&m.Object)
}
func (m *SubscriptionData) SetTrialPeriodDays(v int32) { subscriptionDataTrialPeriodDays.Set(&m.Object, v) }
func (m *SubscriptionData) SetTrialPeriodDaysNull() { subscriptionDataTrialPeriodDays.SetNull(&m.Object) }
func (m *SubscriptionData) UnsetTrialPeriodDays() { subscriptionDataTrialPeriodDays.Unset(&m.Object) }

func (m *SubscriptionData) Validate() error { return subscriptionDataSchema.Validate(&m.Object) }
func (m *SubscriptionData) Clone() *SubscriptionData { return core.Clone(m) }
func (m *SubscriptionData) Equal(o *SubscriptionData) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields SubscriptionData does not declare.
func (m *SubscriptionData) AdditionalProperties() map[string]json.RawMessage {
	return subscriptionDataSchema.AdditionalProperties(&m.Object)
}

// OnDemandSubscription describes a subscription charged on demand by the merchant.
type OnDemandSubscription struct{ core.Object }

var (
	onDemandSubscriptionMandateOnly                   = core.NewField[bool]("OnDemandSubscription", "mandate_only", core.Required)
	onDemandSubscriptionAdaptiveCurrencyFeesInclusive = core.NewField[bool]("OnDemandSubscription", "adaptive_currency_fees_inclusive", core.Nullable)
	onDemandSubscriptionProductCurrency               = core.NewField[core.Enum[Currency]]("OnDemandSubscription", "product_currency", core.Nullable)
	onDemandSubscriptionProductDescription            = core.NewField[string]("OnDemandSubscription", "product_description", core.Nullable)
	onDemandSubscriptionProductPrice                  = core.NewField[int64]("OnDemandSubscription", "product_price", core.Nullable)
	onDemandSubscriptionSchema                        = core.NewSchema("OnDemandSubscription",
		onDemandSubscriptionMandateOnly,
		onDemandSubscriptionAdaptiveCurrencyFeesInclusive,
		onDemandSubscriptionProductCurrency,
		onDemandSubscriptionProductDescription,
		onDemandSubscriptionProductPrice,
	)
)

// OnDemandSubscriptionParams holds the named arguments of NewOnDemandSubscription. Fields left
// unspecified are not written to the wire.
type OnDemandSubscriptionParams struct {
	MandateOnly                   core.Optional[bool]
	AdaptiveCurrencyFeesInclusive core.Optional[bool]
	ProductCurrency               core.Optional[core.Enum[Currency]]
	ProductDescription            core.Optional[string]
	ProductPrice                  core.Optional[int64]
}

func NewOnDemandSubscription(p OnDemandSubscriptionParams) *OnDemandSubscription {
	m := &OnDemandSubscription{}
	onDemandSubscriptionMandateOnly.Assign(&m.Object, p.MandateOnly)
	onDemandSubscriptionAdaptiveCurrencyFeesInclusive.Assign(&m.Object, p.AdaptiveCurrencyFeesInclusive)
	onDemandSubscriptionProductCurrency.Assign(&m.Object, p.ProductCurrency)
	onDemandSubscriptionProductDescription.Assign(&m.Object, p.ProductDescription)
	onDemandSubscriptionProductPrice.Assign(&m.Object, p.ProductPrice)
	return m
}

// MandateOnly authorizes the mandate without charging the customer.
func (m *OnDemandSubscription) MandateOnly() (core.Optional[bool], error) {
	return onDemandSubscriptionMandateOnly.Get(&m.Object)
}
func (m *OnDemandSubscription) SetMandateOnly(v bool) { onDemandSubscriptionMandateOnly.Set(&m.Object, v) }
func (m *OnDemandSubscription) UnsetMandateOnly() { onDemandSubscriptionMandateOnly.Unset(&m.Object) }

func (m *OnDemandSubscription) AdaptiveCurrencyFeesInclusive() (core.Optional[bool], error) {
	return onDemandSubscriptionAdaptiveCurrencyFeesInclusive.Get(&m.Object)
}
func (m *OnDemandSubscription) SetAdaptiveCurrencyFeesInclusive(v bool) { onDemandSubscriptionAdaptiveCurrencyFeesInclusive.Set(&m.Object, v) }
func (m *OnDemandSubscription) SetAdaptiveCurrencyFeesInclusiveNull() { onDemandSubscriptionAdaptiveCurrencyFeesInclusive.SetNull(&m.Object) }
func (m *OnDemandSubscription) UnsetAdaptiveCurrencyFeesInclusive() { onDemandSubscriptionAdaptiveCurrencyFeesInclusive.Unset(&m.Object) }

func (m *OnDemandSubscription) ProductCurrency() (core.Optional[core.Enum[Currency]], error) {
	return onDemandSubscriptionProductCurrency.Get(&m.Object)
}
func (m *OnDemandSubscription) SetProductCurrency(v core.Enum[Currency]) { onDemandSubscriptionProductCurrency.Set(&m.Object, v) }
func (m *OnDemandSubscription) SetProductCurrencyNull() { onDemandSubscriptionProductCurrency.SetNull(&m.Object) }
func (m *OnDemandSubscription) UnsetProductCurrency() { onDemandSubscriptionProductCurrency.Unset(&m.Object) }

func (m *OnDemandSubscription) ProductDescription() (core.Optional[string], error) {
	return onDemandSubscriptionProductDescription.Get(&m.Object)
}
func (m *OnDemandSubscription) SetProductDescription(v string) { onDemandSubscriptionProductDescription.Set(&m.Object, v) }
func (m *OnDemandSubscription) SetProductDescriptionNull() { onDemandSubscriptionProductDescription.SetNull(&m.Object) }
func (m *OnDemandSubscription) UnsetProductDescription() { onDemandSubscriptionProductDescription.Unset(&m.Object) }

func (m *OnDemandSubscription) ProductPrice() (core.Optional[int64], error) {
	return onDemandSubscriptionProductPrice.Get(&m.Object)
}
func (m *OnDemandSubscription) SetProductPrice(v int64) { onDemandSubscriptionProductPrice.Set(&m.Object, v) }
func (m *OnDemandSubscription) SetProductPriceNull() { onDemandSubscriptionProductPrice.SetNull(&m.Object) }
func (m *OnDemandSubscription) UnsetProductPrice() { onDemandSubscriptionProductPrice.Unset(&m.Object) }

func (m *OnDemandSubscription) Validate() error { return onDemandSubscriptionSchema.Validate(&m.Object) }
func (m *OnDemandSubscription) Clone() *OnDemandSubscription { return core.Clone(m) }
func (m *OnDemandSubscription) Equal(o *OnDemandSubscription) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields OnDemandSubscription does not declare.
func (m *OnDemandSubscription) AdditionalProperties() map[string]json.RawMessage {
	return onDemandSubscriptionSchema.AdditionalProperties(&m.Object)
}
