package checkoutsessions

import (
	"encoding/json"

	"github.com/paylane/paylane-go/core"
)

// CustomField is a merchant-defined input shown on the checkout page.
type CustomField struct{ core.Object }

var (
	customFieldFieldType   = core.NewField[core.Enum[CustomFieldType]]("CustomField", "field_type", core.Required)
	customFieldKey         = core.NewField[string]("CustomField", "key", core.Required)
	customFieldLabel       = core.NewField[string]("CustomField", "label", core.Required)
	customFieldOptions     = core.NewField[[]string]("CustomField", "options", core.Nullable)
	customFieldPlaceholder = core.NewField[string]("CustomField", "placeholder", core.Nullable)
	customFieldRequired    = core.NewField[bool]("CustomField", "required")
	customFieldSchema      = core.NewSchema("CustomField",
		customFieldFieldType,
		customFieldKey,
		customFieldLabel,
		customFieldOptions,
		customFieldPlaceholder,
		customFieldRequired,
	)
)

// CustomFieldParams holds the named arguments of NewCustomField. Fields left
// unspecified are not written to the wire.
type CustomFieldParams struct {
	FieldType   core.Optional[core.Enum[CustomFieldType]]
	Key         core.Optional[string]
	Label       core.Optional[string]
	Options     core.Optional[[]string]
	Placeholder core.Optional[string]
	Required    core.Optional[bool]
}

func NewCustomField(p CustomFieldParams) *CustomField {
	m := &CustomField{}
	customFieldFieldType.Assign(&m.Object, p.FieldType)
	customFieldKey.Assign(&m.Object, p.Key)
	customFieldLabel.Assign(&m.Object, p.Label)
	customFieldOptions.Assign(&m.Object, p.Options)
	customFieldPlaceholder.Assign(&m.Object, p.Placeholder)
	customFieldRequired.Assign(&m.Object, p.Required)
	return m
}

func (m *CustomField) FieldType() (core.Optional[core.Enum[CustomFieldType]], error) {
	return customFieldFieldType.Get(&m.Object)
}
func (m *CustomField) SetFieldType(v core.Enum[CustomFieldType]) { customFieldFieldType.Set(&m.Object, v) }
func (m *CustomField) UnsetFieldType() { customFieldFieldType.Unset(&m.Object) }

func (m *CustomField) Key() (core.Optional[string], error) { return customFieldKey.Get(&m.Object) }
func (m *CustomField) SetKey(v string) { customFieldKey.Set(&m.Object, v) }
func (m *CustomField) UnsetKey() { customFieldKey.Unset(&m.Object) }

func (m *CustomField) Label() (core.Optional[string], error) {
	return customFieldLabel.Get(&m.Object)
}
func (m *CustomField) SetLabel(v string) { customFieldLabel.Set(&m.Object, v) }
func (m *CustomField) UnsetLabel() { customFieldLabel.Unset(&m.Object) }

// Options lists the choices of a dropdown field.
func (m *CustomField) Options() (core.Optional[[]string], error) {
	return customFieldOptions.Get(&m.Object)
}
func (m *CustomField) SetOptions(v []string) { customFieldOptions.Set(&m.Object, v) }
func (m *CustomField) SetOptionsNull() { customFieldOptions.SetNull(&m.Object) }
func (m *CustomField) UnsetOptions() { customFieldOptions.Unset(&m.Object) }

func (m *CustomField) Placeholder() (core.Optional[string], error) {
	return customFieldPlaceholder.Get(&m.Object)
}
func (m *CustomField) SetPlaceholder(v string) { customFieldPlaceholder.Set(&m.Object, v) }
func (m *CustomField) SetPlaceholderNull() { customFieldPlaceholder.SetNull(&m.Object) }
func (m *CustomField) UnsetPlaceholder() { customFieldPlaceholder.Unset(&m.Object) }

func (m *CustomField) Required() (core.Optional[bool], error) {
	return customFieldRequired.Get(&m.Object)
}
func (m *CustomField) SetRequired(v bool) { customFieldRequired.Set(&m.Object, v) }
func (m *CustomField) UnsetRequired() { customFieldRequired.Unset(&m.Object) }

func (m *CustomField) Validate() error { return customFieldSchema.Validate(&m.Object) }
func (m *CustomField) Clone() *CustomField { return core.Clone(m) }
func (m *CustomField) Equal(o *CustomField) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields CustomField does not declare.
func (m *CustomField) AdditionalProperties() map[string]json.RawMessage {
	return customFieldSchema.AdditionalProperties(&m.Object)
}

// Customization controls the look of the hosted checkout page.
type Customization struct{ core.Object }

var (
	customizationShowOnDemandTag  = core.NewField[bool]("Customization", "show_on_demand_tag")
	customizationShowOrderDetails = core.NewField[bool]("Customization", "show_order_details")
	customizationTheme            = core.NewField[core.Enum[Theme]]("Customization", "theme")
	customizationSchema           = core.NewSchema("Customization",
		customizationShowOnDemandTag,
		customizationShowOrderDetails,
		customizationTheme,
	)
)

// CustomizationParams holds the named arguments of NewCustomization. Fields left
// unspecified are not written to the wire.
type CustomizationParams struct {
	ShowOnDemandTag  core.Optional[bool]
	ShowOrderDetails core.Optional[bool]
	Theme            core.Optional[core.Enum[Theme]]
}

func NewCustomization(p CustomizationParams) *Customization {
	m := &Customization{}
	customizationShowOnDemandTag.Assign(&m.Object, p.ShowOnDemandTag)
	customizationShowOrderDetails.Assign(&m.Object, p.ShowOrderDetails)
	customizationTheme.Assign(&m.Object, p.Theme)
	return m
}

func (m *Customization) ShowOnDemandTag() (core.Optional[bool], error) {
	return customizationShowOnDemandTag.Get(&m.Object)
}
func (m *Customization) SetShowOnDemandTag(v bool) { customizationShowOnDemandTag.Set(&m.Object, v) }
func (m *Customization) UnsetShowOnDemandTag() { customizationShowOnDemandTag.Unset(&m.Object) }

func (m *Customization) ShowOrderDetails() (core.Optional[bool], error) {
	return customizationShowOrderDetails.Get(&m.Object)
}
func (m *Customization) SetShowOrderDetails(v bool) { customizationShowOrderDetails.Set(&m.Object, v) }
func (m *Customization) UnsetShowOrderDetails() { customizationShowOrderDetails.Unset(&m.Object) }

func (m *Customization) Theme() (core.Optional[core.Enum[Theme]], error) {
	return customizationTheme.Get(&m.Object)
}
func (m *Customization) SetTheme(v core.Enum[Theme]) { customizationTheme.Set(&m.Object, v) }
func (m *Customization) UnsetTheme() { customizationTheme.Unset(&m.Object) }

func (m *Customization) Validate() error { return customizationSchema.Validate(&m.Object) }
func (m *Customization) Clone() *Customization { return core.Clone(m) }
func (m *Customization) Equal(o *Customization) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields Customization does not declare.
func (m *Customization) AdditionalProperties() map[string]json.RawMessage {
	return customizationSchema.AdditionalProperties(&m.Object)
}

// FeatureFlags toggles optional checkout behaviour.
type FeatureFlags struct{ core.Object }

var (
	featureFlagsAllowCurrencySelection     = core.NewField[bool]("FeatureFlags", "allow_currency_selection")
	featureFlagsAllowDiscountCode          = core.NewField[bool]("FeatureFlags", "allow_discount_code")
	featureFlagsAllowPhoneNumberCollection = core.NewField[bool]("FeatureFlags", "allow_phone_number_collection")
	featureFlagsAllowTaxID                 = core.NewField[bool]("FeatureFlags", "allow_tax_id")
	featureFlagsAlwaysCreateNewCustomer    = core.NewField[bool]("FeatureFlags", "always_create_new_customer")
	featureFlagsSchema                     = core.NewSchema("FeatureFlags",
		featureFlagsAllowCurrencySelection,
		featureFlagsAllowDiscountCode,
		featureFlagsAllowPhoneNumberCollection,
		featureFlagsAllowTaxID,
		featureFlagsAlwaysCreateNewCustomer,
	)
)

// FeatureFlagsParams holds the named arguments of NewFeatureFlags. Fields left
// unspecified are not written to the wire.
type FeatureFlagsParams struct {
	AllowCurrencySelection     core.Optional[bool]
	AllowDiscountCode          core.Optional[bool]
	AllowPhoneNumberCollection core.Optional[bool]
	AllowTaxID                 core.Optional[bool]
	AlwaysCreateNewCustomer    core.Optional[bool]
}

func NewFeatureFlags(p FeatureFlagsParams) *FeatureFlags {
	m := &FeatureFlags{}
	featureFlagsAllowCurrencySelection.Assign(&m.Object, p.AllowCurrencySelection)
	featureFlagsAllowDiscountCode.Assign(&m.Object, p.AllowDiscountCode)
	featureFlagsAllowPhoneNumberCollection.Assign(&m.Object, p.AllowPhoneNumberCollection)
	featureFlagsAllowTaxID.Assign(&m.Object, p.AllowTaxID)
	featureFlagsAlwaysCreateNewCustomer.Assign(&m.Object, p.AlwaysCreateNewCustomer)
	return m
}

func (m *FeatureFlags) AllowCurrencySelection() (core.Optional[bool], error) {
	return featureFlagsAllowCurrencySelection.Get(&m.Object)
}
func (m *FeatureFlags) SetAllowCurrencySelection(v bool) { featureFlagsAllowCurrencySelection.Set(&m.Object, v) }
func (m *FeatureFlags) UnsetAllowCurrencySelection() { featureFlagsAllowCurrencySelection.Unset(&m.Object) }

func (m *FeatureFlags) AllowDiscountCode() (core.Optional[bool], error) {
	return featureFlagsAllowDiscountCode.Get(&m.Object)
}
func (m *FeatureFlags) SetAllowDiscountCode(v bool) { featureFlagsAllowDiscountCode.Set(&m.Object, v) }
func (m *FeatureFlags) UnsetAllowDiscountCode() { featureFlagsAllowDiscountCode.Unset(&m.Object) }

func (m *FeatureFlags) AllowPhoneNumberCollection() (core.Optional[bool], error) {
	return featureFlagsAllowPhoneNumberCollection.Get(&m.Object)
}
func (m *FeatureFlags) SetAllowPhoneNumberCollection(v bool) { featureFlagsAllowPhoneNumberCollection.Set(&m.Object, v) }
func (m *FeatureFlags) UnsetAllowPhoneNumberCollection() { featureFlagsAllowPhoneNumberCollection.Unset(&m.Object) }

func (m *FeatureFlags) AllowTaxID() (core.Optional[bool], error) {
	return featureFlagsAllowTaxID.Get(&m.Object)
}
func (m *FeatureFlags) SetAllowTaxID(v bool) { featureFlagsAllowTaxID.Set(&m.Object, v) }
func (m *FeatureFlags) UnsetAllowTaxID() { featureFlagsAllowTaxID.Unset(&m.Object) }

func (m *FeatureFlags) AlwaysCreateNewCustomer() (core.Optional[bool], error) {
	return featureFlagsAlwaysCreateNewCustomer.Get(&m.Object)
}
func (m *FeatureFlags) SetAlwaysCreateNewCustomer(v bool) { featureFlagsAlwaysCreateNewCustomer.Set(&m.Object, v) }
func (m *FeatureFlags) UnsetAlwaysCreateNewCustomer() { featureFlagsAlwaysCreateNewCustomer.Unset(&m.Object) }

func (m *FeatureFlags) Validate() error { return featureFlagsSchema.Validate(&m.Object) }
func (m *FeatureFlags) Clone() *FeatureFlags { return core.Clone(m) }
func (m *FeatureFlags) Equal(o *FeatureFlags) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields FeatureFlags does not declare.
func (m *FeatureFlags) AdditionalProperties() map[string]json.RawMessage {
	return featureFlagsSchema.AdditionalProperties(&m.Object)
}
