package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action Action
		valid  bool
	}{
		{name: "product view", action: ActionProductView, valid: true},
		{name: "add to cart", action: ActionAddToCart, valid: true},
		{name: "remove from cart", action: ActionRemoveFromCart, valid: true},
		{name: "add to wishlist", action: ActionAddToWishlist, valid: true},
		{name: "remove from wishlist", action: ActionRemoveFromWishlist, valid: true},
		{name: "purchase", action: ActionPurchase, valid: true},
		{name: "shop visit", action: ActionShopVisit, valid: true},
		{name: "unknown action", action: Action("checkout"), valid: false},
		{name: "empty action", action: Action(""), valid: false},
		{name: "case sensitive", action: Action("Product_View"), valid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, tt.action.IsValid())
		})
	}
}

func TestUserAnalytics_IsNew(t *testing.T) {
	t.Parallel()

	fresh := NewEmptyUserAnalytics("u1")
	assert.True(t, fresh.IsNew())
	assert.Equal(t, "u1", fresh.UserID)
	assert.Empty(t, fresh.Actions)
}

func TestProductAnalytics_IsNew(t *testing.T) {
	t.Parallel()

	fresh := NewEmptyProductAnalytics("p1")
	assert.True(t, fresh.IsNew())
	assert.Equal(t, "p1", fresh.ProductID)
	assert.Zero(t, fresh.Views)
}
