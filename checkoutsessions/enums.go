package checkoutsessions

// PaymentMethodType identifies a payment method the checkout page may offer.
type PaymentMethodType string

const (
	PaymentMethodTypeCredit           PaymentMethodType = "credit"
	PaymentMethodTypeDebit            PaymentMethodType = "debit"
	PaymentMethodTypeUpiCollect       PaymentMethodType = "upi_collect"
	PaymentMethodTypeUpiIntent        PaymentMethodType = "upi_intent"
	PaymentMethodTypeApplePay         PaymentMethodType = "apple_pay"
	PaymentMethodTypeCashapp          PaymentMethodType = "cashapp"
	PaymentMethodTypeGooglePay        PaymentMethodType = "google_pay"
	PaymentMethodTypeMultibanco       PaymentMethodType = "multibanco"
	PaymentMethodTypeBancontactCard   PaymentMethodType = "bancontact_card"
	PaymentMethodTypeEps              PaymentMethodType = "eps"
	PaymentMethodTypeIdeal            PaymentMethodType = "ideal"
	PaymentMethodTypePrzelewy24       PaymentMethodType = "przelewy24"
	PaymentMethodTypePaypal           PaymentMethodType = "paypal"
	PaymentMethodTypeAffirm           PaymentMethodType = "affirm"
	PaymentMethodTypeKlarna           PaymentMethodType = "klarna"
	PaymentMethodTypeSepa             PaymentMethodType = "sepa"
	PaymentMethodTypeACH              PaymentMethodType = "ach"
	PaymentMethodTypeAmazonPay        PaymentMethodType = "amazon_pay"
	PaymentMethodTypeAfterpayClearpay PaymentMethodType = "afterpay_clearpay"
)

func (PaymentMethodType) KnownValues() []PaymentMethodType {
	return []PaymentMethodType{
		PaymentMethodTypeCredit, PaymentMethodTypeDebit, PaymentMethodTypeUpiCollect,
		PaymentMethodTypeUpiIntent, PaymentMethodTypeApplePay, PaymentMethodTypeCashapp,
		PaymentMethodTypeGooglePay, PaymentMethodTypeMultibanco, PaymentMethodTypeBancontactCard,
		PaymentMethodTypeEps, PaymentMethodTypeIdeal, PaymentMethodTypePrzelewy24,
		PaymentMethodTypePaypal, PaymentMethodTypeAffirm, PaymentMethodTypeKlarna,
		PaymentMethodTypeSepa, PaymentMethodTypeACH, PaymentMethodTypeAmazonPay,
		PaymentMethodTypeAfterpayClearpay,
	}
}

// CustomFieldType is the input kind of a merchant-defined checkout field.
type CustomFieldType string

const (
	CustomFieldTypeText     CustomFieldType = "text"
	CustomFieldTypeNumber   CustomFieldType = "number"
	CustomFieldTypeEmail    CustomFieldType = "email"
	CustomFieldTypeURL      CustomFieldType = "url"
	CustomFieldTypePhone    CustomFieldType = "phone"
	CustomFieldTypeDate     CustomFieldType = "date"
	CustomFieldTypeDatetime CustomFieldType = "datetime"
	CustomFieldTypeDropdown CustomFieldType = "dropdown"
	CustomFieldTypeBoolean  CustomFieldType = "boolean"
)

func (CustomFieldType) KnownValues() []CustomFieldType {
	return []CustomFieldType{
		CustomFieldTypeText, CustomFieldTypeNumber, CustomFieldTypeEmail,
		CustomFieldTypeURL, CustomFieldTypePhone, CustomFieldTypeDate,
		CustomFieldTypeDatetime, CustomFieldTypeDropdown, CustomFieldTypeBoolean,
	}
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (Theme) KnownValues() []Theme { return []Theme{ThemeLight, ThemeDark, ThemeSystem} }

// IntentStatus is the lifecycle state of the payment behind a checkout session.
type IntentStatus string

const (
	IntentStatusSucceeded                      IntentStatus = "succeeded"
	IntentStatusFailed                         IntentStatus = "failed"
	IntentStatusCancelled                      IntentStatus = "cancelled"
	IntentStatusProcessing                     IntentStatus = "processing"
	IntentStatusRequiresCustomerAction         IntentStatus = "requires_customer_action"
	IntentStatusRequiresMerchantAction         IntentStatus = "requires_merchant_action"
	IntentStatusRequiresPaymentMethod          IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation           IntentStatus = "requires_confirmation"
	IntentStatusRequiresCapture                IntentStatus = "requires_capture"
	IntentStatusPartiallyCaptured              IntentStatus = "partially_captured"
	IntentStatusPartiallyCapturedAndCapturable IntentStatus = "partially_captured_and_capturable"
)

func (IntentStatus) KnownValues() []IntentStatus {
	return []IntentStatus{
		IntentStatusSucceeded, IntentStatusFailed, IntentStatusCancelled,
		IntentStatusProcessing, IntentStatusRequiresCustomerAction,
		IntentStatusRequiresMerchantAction, IntentStatusRequiresPaymentMethod,
		IntentStatusRequiresConfirmation, IntentStatusRequiresCapture,
		IntentStatusPartiallyCaptured, IntentStatusPartiallyCapturedAndCapturable,
	}
}
