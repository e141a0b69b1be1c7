package models

import "time"

// ProductAnalytics is the persisted per-product aggregate, keyed by product
// ID. Counters are incremented and decremented per action kind; decrements
// without a prior increment are not clamped, so a negative value is a raw
// signal of lost or reordered messages rather than an error.
//
// ShopID is set when the aggregate is first created and never changed.
type ProductAnalytics struct {
	ProductID    string    `json:"productId" bson:"_id"`
	ShopID       string    `json:"shopId,omitempty" bson:"shopId,omitempty"`
	Views        int64     `json:"views" bson:"views"`
	CartAdds     int64     `json:"cartAdds" bson:"cartAdds"`
	WishlistAdds int64     `json:"wishlistAdds" bson:"wishlistAdds"`
	Purchases    int64     `json:"purchases" bson:"purchases"`
	LastViewedAt time.Time `json:"lastViewedAt" bson:"lastViewedAt"`
}

func NewEmptyProductAnalytics(productID string) *ProductAnalytics {
	return &ProductAnalytics{ProductID: productID}
}

// IsNew reports whether this aggregate has never been touched by an event.
// LastViewedAt is set unconditionally whenever the aggregate is touched.
func (p *ProductAnalytics) IsNew() bool {
	return p.LastViewedAt.IsZero()
}
