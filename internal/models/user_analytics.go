package models

import "time"

// MaxTrackedActions bounds the per-user action log. After an append the log
// is trimmed oldest-first until it holds at most this many entries.
const MaxTrackedActions = 100

// TrackedAction is one entry in a user's bounded action log.
type TrackedAction struct {
	ProductID string    `json:"productId,omitempty" bson:"productId,omitempty"`
	ShopID    string    `json:"shopId,omitempty" bson:"shopId,omitempty"`
	Action    Action    `json:"action" bson:"action"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// UserAnalytics is the persisted per-user aggregate, keyed by user ID.
// It is created on the first event for a user and mutated on every
// subsequent one; this pipeline never deletes it.
//
// Country, city, and device are denormalized opportunistically from the most
// recent event that carried them and are never cleared once set.
//
// Example JSON:
//
//	{
//	  "userId": "u1",
//	  "lastVisited": "2026-08-30T14:02:11Z",
//	  "actions": [
//	    {"productId": "p1", "shopId": "s1", "action": "product_view", "timestamp": "2026-08-30T14:02:11Z"},
//	    {"productId": "p1", "shopId": "s1", "action": "add_to_cart", "timestamp": "2026-08-30T14:03:40Z"}
//	  ],
//	  "country": "DE",
//	  "city": "Berlin",
//	  "device": "mobile"
//	}
type UserAnalytics struct {
	UserID      string          `json:"userId" bson:"_id"`
	LastVisited time.Time       `json:"lastVisited" bson:"lastVisited"`
	Actions     []TrackedAction `json:"actions" bson:"actions"`
	Country     string          `json:"country,omitempty" bson:"country,omitempty"`
	City        string          `json:"city,omitempty" bson:"city,omitempty"`
	Device      string          `json:"device,omitempty" bson:"device,omitempty"`
}

func NewEmptyUserAnalytics(userID string) *UserAnalytics {
	return &UserAnalytics{
		UserID:  userID,
		Actions: []TrackedAction{},
	}
}

// IsNew reports whether this aggregate has never been touched by an event.
// LastVisited is set unconditionally on every processed event, so a zero
// value means the record was just defaulted by a store miss.
func (u *UserAnalytics) IsNew() bool {
	return u.LastVisited.IsZero()
}
