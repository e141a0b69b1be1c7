package aggregators

import (
	"fmt"

	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/models"
)

// AggregateEngine folds one event into the two aggregate records. Both
// methods mutate their aggregate in place; the caller owns the surrounding
// read-modify-write against the store.
//
//go:generate mockgen -source=engine.go -destination=./mocks/engine_mock.go -package=mocks
type AggregateEngine interface {
	// ApplyToUser merges the event into the per-user aggregate.
	ApplyToUser(user *models.UserAnalytics, event *events.UserEvent) error
	// ApplyToProduct merges the event into the per-product aggregate.
	// Only called for events that carry a product ID.
	ApplyToProduct(product *models.ProductAnalytics, event *events.UserEvent) error
}

type aggregateEngine struct{}

func NewAggregateEngine() AggregateEngine {
	return &aggregateEngine{}
}

// ApplyToUser applies the per-action merge rules to the user's bounded
// action log:
//
//   - product_view always appends (every view is recorded)
//   - add_to_cart / add_to_wishlist append unless an entry for the same
//     (productId, action) already exists
//   - remove_from_cart / remove_from_wishlist drop the matching add entry
//   - purchase and shop_visit leave the log untouched
//
// lastVisited is overwritten on every processed event, and the contextual
// fields are taken from the event only when present, never cleared.
func (e *aggregateEngine) ApplyToUser(user *models.UserAnalytics, event *events.UserEvent) error {
	if user.UserID != event.UserID {
		return fmt.Errorf("userID mismatch: aggregate=%q, event=%q", user.UserID, event.UserID)
	}
	if !event.Action.IsValid() {
		// Validation drops these upstream; a mismatch here means a bug,
		// and the aggregate must stay untouched.
		return fmt.Errorf("unknown action %q reached the engine", event.Action)
	}

	user.LastVisited = event.Timestamp

	if event.Country != "" {
		user.Country = event.Country
	}
	if event.City != "" {
		user.City = event.City
	}
	if event.Device != "" {
		user.Device = event.Device
	}

	switch event.Action {
	case models.ActionProductView:
		appendTrackedAction(user, event)
	case models.ActionAddToCart, models.ActionAddToWishlist:
		if !hasTrackedAction(user, event.ProductID, event.Action) {
			appendTrackedAction(user, event)
		}
	case models.ActionRemoveFromCart:
		removeTrackedAction(user, event.ProductID, models.ActionAddToCart)
	case models.ActionRemoveFromWishlist:
		removeTrackedAction(user, event.ProductID, models.ActionAddToWishlist)
	case models.ActionPurchase, models.ActionShopVisit:
		// Purchases are tracked through the product counter only, and
		// shop visits mutate no aggregate beyond lastVisited.
	}

	return nil
}

// ApplyToProduct applies the counter effect of the event. Decrements are
// not clamped at zero: a negative counter is a visible signal of lost or
// reordered messages and is surfaced through a metric instead of being
// silently absorbed.
func (e *aggregateEngine) ApplyToProduct(product *models.ProductAnalytics, event *events.UserEvent) error {
	if event.ProductID == "" {
		return fmt.Errorf("event without productID reached the product engine")
	}
	if product.ProductID != event.ProductID {
		return fmt.Errorf("productID mismatch: aggregate=%q, event=%q", product.ProductID, event.ProductID)
	}
	if !event.Action.IsValid() {
		return fmt.Errorf("unknown action %q reached the engine", event.Action)
	}

	product.LastViewedAt = event.Timestamp

	// shopId is fixed at creation and never rewritten afterwards.
	if product.ShopID == "" && event.ShopID != "" {
		product.ShopID = event.ShopID
	}

	switch event.Action {
	case models.ActionProductView:
		product.Views++
	case models.ActionAddToCart:
		product.CartAdds++
	case models.ActionRemoveFromCart:
		product.CartAdds--
		observeNegativeCounter("cart_adds", product.CartAdds)
	case models.ActionAddToWishlist:
		product.WishlistAdds++
	case models.ActionRemoveFromWishlist:
		product.WishlistAdds--
		observeNegativeCounter("wishlist_adds", product.WishlistAdds)
	case models.ActionPurchase:
		product.Purchases++
	case models.ActionShopVisit:
		// No counter for shop-level events.
	}

	return nil
}

func observeNegativeCounter(counter string, value int64) {
	if value < 0 {
		metricCounterWentNegativeTotal.WithLabelValues(counter).Inc()
	}
}

func hasTrackedAction(user *models.UserAnalytics, productID string, action models.Action) bool {
	for _, entry := range user.Actions {
		if entry.ProductID == productID && entry.Action == action {
			return true
		}
	}
	return false
}

func appendTrackedAction(user *models.UserAnalytics, event *events.UserEvent) {
	user.Actions = append(user.Actions, models.TrackedAction{
		ProductID: event.ProductID,
		ShopID:    event.ShopID,
		Action:    event.Action,
		Timestamp: event.Timestamp,
	})

	// Strict FIFO cap: evict oldest entries until the bound holds.
	if overflow := len(user.Actions) - models.MaxTrackedActions; overflow > 0 {
		user.Actions = append(user.Actions[:0], user.Actions[overflow:]...)
	}
}

func removeTrackedAction(user *models.UserAnalytics, productID string, action models.Action) {
	for i, entry := range user.Actions {
		if entry.ProductID == productID && entry.Action == action {
			user.Actions = append(user.Actions[:i], user.Actions[i+1:]...)
			return
		}
	}
}
