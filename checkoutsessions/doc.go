// Package checkoutsessions holds the request and response models of the checkout
// session API.
//
// Every model embeds core.Object. Fields are read with X, which reports whether the
// field is unset, null or holds a value, and written with SetX, SetXNull (nullable
// fields only) and UnsetX. Models can also be built in one call from a Params
// struct:
//
//	item := checkoutsessions.NewProductItem(checkoutsessions.ProductItemParams{
//		ProductID: core.Some("pdt_123"),
//		Quantity:  core.Some[int64](1),
//	})
//
// Nothing is validated until Validate is called.
package checkoutsessions
