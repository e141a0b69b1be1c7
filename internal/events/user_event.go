package events

import (
	"encoding/json"
	"strings"
	"time"

	"marketplace-analytics/internal/models"
	"marketplace-analytics/internal/shared/validators"

	"github.com/mileusna/useragent"
)

// UserEvent is the envelope published on the users-events topic, one per
// user action. UserID and Action are mandatory; everything else is
// contextual. ProductID is absent for shop-level events such as shop_visit.
//
// Example JSON:
//
//	{
//	  "userId": "u1",
//	  "productId": "p1",
//	  "shopId": "s1",
//	  "action": "add_to_cart",
//	  "country": "DE",
//	  "city": "Berlin",
//	  "userAgent": "Mozilla/5.0 (iPhone; ...)"
//	}
type UserEvent struct {
	UserID    string        `json:"userId" validate:"required"`
	ProductID string        `json:"productId,omitempty"`
	ShopID    string        `json:"shopId,omitempty"`
	Action    models.Action `json:"action" validate:"required"`
	Country   string        `json:"country,omitempty"`
	City      string        `json:"city,omitempty"`
	Device    string        `json:"device,omitempty"`
	UserAgent string        `json:"userAgent,omitempty"`
	Timestamp time.Time     `json:"timestamp,omitempty"`
}

var validate = validators.New()

// ParseUserEvent decodes and validates a raw message body. A malformed
// payload, a missing userId, or an action outside the closed enumeration
// yields an invalid_argument ServiceError; callers drop the message and
// still commit it (the transport has no return channel to the emitter).
//
// The timestamp defaults to now when the producer did not supply one, and
// the device is derived from the user agent when only the latter is present.
func ParseUserEvent(data []byte, now time.Time) (*UserEvent, error) {
	var event UserEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errMalformedPayload(err)
	}

	if err := validate.Struct(&event); err != nil {
		return nil, errValidationFailed(err)
	}

	if !event.Action.IsValid() {
		return nil, errUnknownAction(string(event.Action))
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = now
	}

	if event.Device == "" && event.UserAgent != "" {
		event.Device = deviceFromUserAgent(event.UserAgent)
	}

	return &event, nil
}

// deviceFromUserAgent buckets a raw user agent into a coarse device class.
// The raw string is never persisted, only this classification.
func deviceFromUserAgent(rawUserAgent string) string {
	parsed := useragent.Parse(strings.TrimSpace(rawUserAgent))
	switch {
	case parsed.Bot:
		return "bot"
	case parsed.Tablet:
		return "tablet"
	case parsed.Mobile:
		return "mobile"
	case parsed.Desktop:
		return "desktop"
	}
	return ""
}
