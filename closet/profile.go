package closet

import (
	"context"
	"time"

	"github.com/stylgpt/closet/models"
)

// ProfileUpdate is the payload for editing profile preferences. Zero
// values for the numeric fields mean "unset".
type ProfileUpdate struct {
	DisplayName          string   `json:"displayName"`
	Email                string   `json:"email"`
	GenderPreference     string   `json:"genderPreference"`
	Age                  int      `json:"age"`
	Weight               float64  `json:"weight"`
	Height               float64  `json:"height"`
	BodyType             string   `json:"bodyType"`
	ColorPreferences     []string `json:"colorPreferences"`
	StylePreferences     []string `json:"stylePreferences"`
	UnusedItemPreference string   `json:"unusedItemPreference"`
	UnitPreference       string   `json:"unitPreference"`
}

var validGenderPreferences = map[string]bool{"male": true, "female": true, "unisex": true}
var validUnusedPreferences = map[string]bool{
	models.UnusedPreferenceLow:    true,
	models.UnusedPreferenceMedium: true,
	models.UnusedPreferenceHigh:   true,
}
var validUnitPreferences = map[string]bool{"metric": true, "imperial": true}

// Profile returns the caller's profile, creating it with defaults on
// first access.
func (s *Service) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	created := models.DefaultProfile(userID)
	created.LastUpdated = time.Now()
	if err := s.profiles.Put(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProfile merges the supplied preferences into the caller's profile.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.UserProfile, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	if update.GenderPreference != "" && !validGenderPreferences[update.GenderPreference] {
		return nil, validationErr("invalid gender preference %q", update.GenderPreference)
	}
	if update.UnusedItemPreference != "" && !validUnusedPreferences[update.UnusedItemPreference] {
		return nil, validationErr("invalid unused item preference %q", update.UnusedItemPreference)
	}
	if update.UnitPreference != "" && !validUnitPreferences[update.UnitPreference] {
		return nil, validationErr("invalid unit preference %q", update.UnitPreference)
	}
	if update.Age < 0 || update.Weight < 0 || update.Height < 0 {
		return nil, validationErr("age, weight and height must be positive")
	}

	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != "" {
		profile.DisplayName = update.DisplayName
	}
	if update.Email != "" {
		profile.Email = update.Email
	}
	if update.GenderPreference != "" {
		profile.GenderPreference = update.GenderPreference
	}
	if update.Age != 0 {
		profile.Age = update.Age
	}
	if update.Weight != 0 {
		profile.Weight = update.Weight
	}
	if update.Height != 0 {
		profile.Height = update.Height
	}
	if update.BodyType != "" {
		profile.BodyType = update.BodyType
	}
	if update.ColorPreferences != nil {
		profile.ColorPreferences = update.ColorPreferences
	}
	if update.StylePreferences != nil {
		profile.StylePreferences = update.StylePreferences
	}
	if update.UnusedItemPreference != "" {
		profile.UnusedItemPreference = update.UnusedItemPreference
	}
	if update.UnitPreference != "" {
		profile.UnitPreference = update.UnitPreference
	}
	profile.LastUpdated = time.Now()

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateNotifications replaces the caller's notification flags.
func (s *Service) UpdateNotifications(ctx context.Context, userID string, settings models.NotificationSettings) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	profile.Notifications = settings
	profile.LastUpdated = time.Now()
	return s.profiles.Put(ctx, profile)
}

// DeleteAccount removes the caller's profile, auth record and every owned
// document. Public catalog items are left untouched. Steps are sequential
// with no rollback; a partial failure leaves earlier deletions in place.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}

	// Owned item photos first, best effort.
	items, err := s.items.ListVisible(ctx, userID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.OwnedBy(userID) && item.StoragePath != "" {
			if err := s.deletePhoto(ctx, item.StoragePath); err != nil {
				return err
			}
		}
	}

	if err := s.items.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.outfits.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.planner.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.profiles.Delete(ctx, userID); err != nil {
		return err
	}
	return s.accounts.Delete(ctx, userID)
}
