package models

// Action is the closed enumeration of behavioral event kinds emitted by the
// marketplace front-ends. Anything outside this set is dropped at validation.
type Action string

const (
	ActionProductView        Action = "product_view"
	ActionAddToCart          Action = "add_to_cart"
	ActionRemoveFromCart     Action = "remove_from_cart"
	ActionAddToWishlist      Action = "add_to_wishlist"
	ActionRemoveFromWishlist Action = "remove_from_wishlist"
	ActionPurchase           Action = "purchase"
	ActionShopVisit          Action = "shop_visit"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionProductView,
		ActionAddToCart,
		ActionRemoveFromCart,
		ActionAddToWishlist,
		ActionRemoveFromWishlist,
		ActionPurchase,
		ActionShopVisit:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}
