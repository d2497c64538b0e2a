package closet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylgpt/closet/models"
)

func TestProfileLazyCreate(t *testing.T) {
	f := newFixture()

	profile, err := f.svc.Profile(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, testUser, profile.UID)
	assert.Equal(t, "unisex", profile.GenderPreference)
	assert.Equal(t, models.UnusedPreferenceMedium, profile.UnusedItemPreference)
	assert.True(t, profile.Notifications.Email)

	// The defaults are persisted, not just returned.
	_, ok := f.profiles.profiles[testUser]
	assert.True(t, ok)
}

func TestUpdateProfileValidation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateProfile(context.Background(), testUser, ProfileUpdate{GenderPreference: "other"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.UpdateProfile(context.Background(), testUser, ProfileUpdate{UnusedItemPreference: "always"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.UpdateProfile(context.Background(), testUser, ProfileUpdate{UnitPreference: "stones"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.UpdateProfile(context.Background(), testUser, ProfileUpdate{Age: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	f := newFixture()

	profile, err := f.svc.UpdateProfile(context.Background(), testUser, ProfileUpdate{
		DisplayName:          "Sam",
		GenderPreference:     "female",
		Age:                  30,
		StylePreferences:     []string{"minimalist"},
		UnusedItemPreference: models.UnusedPreferenceHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sam", profile.DisplayName)
	assert.Equal(t, "female", profile.GenderPreference)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, []string{"minimalist"}, profile.StylePreferences)
	// Untouched fields keep their defaults.
	assert.Equal(t, "metric", profile.UnitPreference)
	assert.Equal(t, "en", profile.Language)

	// A later partial update leaves earlier edits alone.
	profile, err = f.svc.UpdateProfile(context.Background(), testUser, ProfileUpdate{BodyType: "athletic"})
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.DisplayName)
	assert.Equal(t, "athletic", profile.BodyType)
}

func TestUpdateNotifications(t *testing.T) {
	f := newFixture()

	err := f.svc.UpdateNotifications(context.Background(), testUser, models.NotificationSettings{Email: false, AppAlerts: true})
	require.NoError(t, err)

	stored := f.profiles.profiles[testUser]
	assert.False(t, stored.Notifications.Email)
	assert.True(t, stored.Notifications.AppAlerts)
}

func TestDeleteAccountCascades(t *testing.T) {
	f := newFixture()
	f.profiles.profiles[testUser] = models.DefaultProfile(testUser)
	f.photos.objects["wardrobe-items/user-1/a.jpg"] = "image/jpeg"
	f.items.items = []models.ClothingItem{
		{ID: "item-1", UserID: strPtr(testUser), StoragePath: "wardrobe-items/user-1/a.jpg"},
		{ID: "public", UserID: nil},
		{ID: "other", UserID: strPtr("user-2")},
	}
	f.outfits.outfits = []models.Outfit{
		{ID: "outfit-1", UserID: testUser},
		{ID: "outfit-2", UserID: "user-2"},
	}
	f.planner.entries = []models.PlannerEntry{
		{ID: "p1", UserID: testUser, Date: "2026-09-01", OutfitIDs: []string{"outfit-1"}},
	}

	require.NoError(t, f.svc.DeleteAccount(context.Background(), testUser))

	// Owned documents and photos are gone; public and foreign data survive.
	assert.Equal(t, []string{"wardrobe-items/user-1/a.jpg"}, f.photos.deleted)
	require.Len(t, f.items.items, 2)
	assert.Equal(t, "public", f.items.items[0].ID)
	require.Len(t, f.outfits.outfits, 1)
	assert.Equal(t, "outfit-2", f.outfits.outfits[0].ID)
	assert.Empty(t, f.planner.entries)
	_, ok := f.profiles.profiles[testUser]
	assert.False(t, ok)
	assert.Equal(t, []string{testUser}, f.accounts.deleted)
}
