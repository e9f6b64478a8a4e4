package checkoutsessions

import (
	"encoding/json"

	"github.com/paylane/paylane-go/core"
)

// ProductItem is one line of a checkout cart.
type ProductItem struct{ core.Object }

var (
	productItemProductID = core.NewField[string]("ProductItem", "product_id", core.Required)
	productItemQuantity  = core.NewField[int64]("ProductItem", "quantity", core.Required)
	productItemAddons    = core.NewField[[]AttachAddon]("ProductItem", "addons", core.Nullable)
	productItemAmount    = core.NewField[int64]("ProductItem", "amount", core.Nullable)
	productItemSchema    = core.NewSchema("ProductItem",
		productItemProductID,
		productItemQuantity,
		productItemAddons,
		productItemAmount,
	)
)

// ProductItemParams holds the named arguments of NewProductItem. Fields left
// unspecified are not written to the wire.
type ProductItemParams struct {
	ProductID core.Optional[string]
	Quantity  core.Optional[int64]
	Addons    core.Optional[[]AttachAddon]
	Amount    core.Optional[int64]
}

func NewProductItem(p ProductItemParams) *ProductItem {
	m := &ProductItem{}
	productItemProductID.Assign(&m.Object, p.ProductID)
	productItemQuantity.Assign(&m.Object, p.Quantity)
	productItemAddons.Assign(&m.Object, p.Addons)
	productItemAmount.Assign(&m.Object, p.Amount)
	return m
}

func (m *ProductItem) ProductID() (core.Optional[string], error) {
	return productItemProductID.Get(&m.Object)
}
func (m *ProductItem) SetProductID(v string) { productItemProductID.Set(&m.Object, v) }
func (m *ProductItem) UnsetProductID() { productItemProductID.Unset(&m.Object) }

func (m *ProductItem) Quantity() (core.Optional[int64], error) {
	return productItemQuantity.Get(&m.Object)
}
func (m *ProductItem) SetQuantity(v int64) { productItemQuantity.Set(&m.Object, v) }
func (m *ProductItem) UnsetQuantity() { productItemQuantity.Unset(&m.Object) }

// Addons attached to this line. Only subscription products accept addons.
func (m *ProductItem) Addons() (core.Optional[[]AttachAddon], error) {
	return productItemAddons.Get(&m.Object)
}
func (m *ProductItem) SetAddons(v []AttachAddon) { productItemAddons.Set(&m.Object, v) }
func (m *ProductItem) SetAddonsNull() { productItemAddons.SetNull(&m.Object) }
func (m *ProductItem) UnsetAddons() { productItemAddons.Unset(&m.Object) }

// Amount is the price in the smallest currency unit. Only pay-what-you-want
// products accept it; leave it unset to use the catalog price.
func (m *ProductItem) Amount() (core.Optional[int64], error) {
	return productItemAmount.Get(&m.Object)
}
func (m *ProductItem) SetAmount(v int64) { productItemAmount.Set(&m.Object, v) }
func (m *ProductItem) SetAmountNull() { productItemAmount.SetNull(&m.Object) }
func (m *ProductItem) UnsetAmount() { productItemAmount.Unset(&m.Object) }

func (m *ProductItem) Validate() error { return productItemSchema.Validate(&m.Object) }
func (m *ProductItem) Clone() *ProductItem { return core.Clone(m) }
func (m *ProductItem) Equal(o *ProductItem) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields ProductItem does not declare.
func (m *ProductItem) AdditionalProperties() map[string]json.RawMessage {
	return productItemSchema.AdditionalProperties(&m.Object)
}

// AttachAddon adds an addon to a subscription line of the cart.
type AttachAddon struct{ core.Object }

var (
	attachAddonAddonID  = core.NewField[string]("AttachAddon", "addon_id", core.Required)
	attachAddonQuantity = core.NewField[int64]("AttachAddon", "quantity", core.Required)
	attachAddonSchema   = core.NewSchema("AttachAddon", attachAddonAddonID, attachAddonQuantity)
)

// AttachAddonParams holds the named arguments of NewAttachAddon. Fields left
// unspecified are not written to the wire.
type AttachAddonParams struct {
	AddonID  core.Optional[string]
	Quantity core.Optional[int64]
}

func NewAttachAddon(p AttachAddonParams) *AttachAddon {
	m := &AttachAddon{}
	attachAddonAddonID.Assign(&m.Object, p.AddonID)
	attachAddonQuantity.Assign(&m.Object, p.Quantity)
	return m
}

func (m *AttachAddon) AddonID() (core.Optional[string], error) {
	return attachAddonAddonID.Get(&m.Object)
}
func (m *AttachAddon) SetAddonID(v string) { attachAddonAddonID.Set(&m.Object, v) }
func (m *AttachAddon) UnsetAddonID() { attachAddonAddonID.Unset(&m.Object) }

func (m *AttachAddon) Quantity() (core.Optional[int64], error) {
	return attachAddonQuantity.Get(&m.Object)
}
func (m *AttachAddon) SetQuantity(v int64) { attachAddonQuantity.Set(&m.Object, v) }
func (m *AttachAddon) UnsetQuantity() { attachAddonQuantity.Unset(&m.Object) }

func (m *AttachAddon) Validate() error { return attachAddonSchema.Validate(&m.Object) }
func (m *AttachAddon) Clone() *AttachAddon { return core.Clone(m) }
func (m *AttachAddon) Equal(o *AttachAddon) bool { return core.Equal(m, o) }

// AdditionalProperties returns the wire fields AttachAddon does not declare.
func (m *AttachAddon) AdditionalProperties() map[string]json.RawMessage {
	return attachAddonSchema.AdditionalProperties(&m.Object)
}
