package models

import "time"

// Unused-item preference levels and the novelty weights they map to.
// The weight biases the suggestion model toward items absent from the
// user's existing outfits.
const (
	UnusedPreferenceLow    = "low"
	UnusedPreferenceMedium = "medium"
	UnusedPreferenceHigh   = "high"
)

// UnusedItemWeight maps a preference level to the [0,1] novelty weight sent
// to the suggestion engine. Unknown levels fall back to medium.
func UnusedItemWeight(preference string) float64 {
	switch preference {
	case UnusedPreferenceLow:
		return 0.3
	case UnusedPreferenceHigh:
		return 0.9
	default:
		return 0.6
	}
}

// NotificationSettings holds per-channel notification flags.
type NotificationSettings struct {
	Email     bool `bson:"email" json:"email"`
	AppAlerts bool `bson:"app_alerts" json:"appAlerts"`
}

// UserProfile holds preferences and display-only physical attributes for
// one user. The document ID equals the owner identity.
type UserProfile struct {
	UID                  string               `bson:"_id" json:"uid"`
	DisplayName          string               `bson:"display_name,omitempty" json:"displayName,omitempty"`
	Email                string               `bson:"email,omitempty" json:"email,omitempty"`
	Notifications        NotificationSettings `bson:"notifications" json:"notifications"`
	Language             string               `bson:"language" json:"language"`
	GenderPreference     string               `bson:"gender_preference" json:"genderPreference"`
	Age                  int                  `bson:"age,omitempty" json:"age,omitempty"`
	Weight               float64              `bson:"weight,omitempty" json:"weight,omitempty"`
	Height               float64              `bson:"height,omitempty" json:"height,omitempty"`
	BodyType             string               `bson:"body_type,omitempty" json:"bodyType,omitempty"`
	ColorPreferences     []string             `bson:"color_preferences" json:"colorPreferences"`
	StylePreferences     []string             `bson:"style_preferences" json:"stylePreferences"`
	UnusedItemPreference string               `bson:"unused_item_preference" json:"unusedItemPreference"`
	UnitPreference       string               `bson:"unit_preference" json:"unitPreference"`
	LastUpdated          time.Time            `bson:"last_updated" json:"lastUpdated"`
}

// DefaultProfile returns the profile created lazily on first access.
func DefaultProfile(uid string) UserProfile {
	return UserProfile{
		UID: uid,
		Notifications: NotificationSettings{
			Email:     true,
			AppAlerts: true,
		},
		Language:             "en",
		GenderPreference:     "unisex",
		ColorPreferences:     []string{},
		StylePreferences:     []string{},
		UnusedItemPreference: UnusedPreferenceMedium,
		UnitPreference:       "metric",
	}
}
