package closet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylgpt/closet/models"
)

func validDraft() OutfitDraft {
	return OutfitDraft{
		Name:     "Weekend Look",
		Category: "Casual",
		ItemIDs:  []string{"item-1", "item-2"},
	}
}

func TestCreateOutfitValidation(t *testing.T) {
	f := newFixture()

	draft := validDraft()
	draft.Name = "   "
	_, err := f.svc.CreateOutfit(context.Background(), testUser, draft)
	assert.ErrorIs(t, err, ErrValidation)

	draft = validDraft()
	draft.Category = "Streetwear"
	_, err = f.svc.CreateOutfit(context.Background(), testUser, draft)
	assert.ErrorIs(t, err, ErrValidation)

	draft = validDraft()
	draft.ItemIDs = nil
	_, err = f.svc.CreateOutfit(context.Background(), testUser, draft)
	assert.ErrorIs(t, err, ErrValidation)

	// Validation happens before any write.
	assert.Empty(t, f.outfits.outfits)
}

func TestCreateOutfitPersists(t *testing.T) {
	f := newFixture()
	draft := validDraft()
	draft.ItemLayouts = map[string]models.ItemLayout{
		"item-1": {X: 0.1, Y: 0.2, Width: 0.5, Height: 0.4, ZIndex: 1},
	}

	outfit, err := f.svc.CreateOutfit(context.Background(), testUser, draft)
	require.NoError(t, err)

	assert.NotEmpty(t, outfit.ID)
	assert.Equal(t, testUser, outfit.UserID)
	assert.Equal(t, draft.ItemLayouts, outfit.ItemLayouts)
	require.Len(t, f.outfits.outfits, 1)
	assert.Equal(t, outfit.ID, f.outfits.outfits[0].ID)
}

func TestUpdateOutfitLayoutSemantics(t *testing.T) {
	f := newFixture()
	f.outfits.outfits = []models.Outfit{{
		ID: "outfit-1", UserID: testUser, Name: "Look", Category: "Casual",
		ItemIDs:     []string{"item-1"},
		ItemLayouts: map[string]models.ItemLayout{"item-1": {X: 0.1}},
	}}

	update := OutfitUpdate{ID: "outfit-1", Name: "Look", Category: "Casual", ItemIDs: []string{"item-1"}}

	// Omitted layouts keep the stored value.
	require.NoError(t, f.svc.UpdateOutfit(context.Background(), testUser, update))
	assert.NotNil(t, f.outfits.outfits[0].ItemLayouts)

	// An explicitly empty map clears it.
	empty := map[string]models.ItemLayout{}
	update.ItemLayouts = &empty
	require.NoError(t, f.svc.UpdateOutfit(context.Background(), testUser, update))
	assert.Nil(t, f.outfits.outfits[0].ItemLayouts)

	// A non-empty map replaces it.
	layouts := map[string]models.ItemLayout{"item-1": {X: 0.9, ZIndex: 2}}
	update.ItemLayouts = &layouts
	require.NoError(t, f.svc.UpdateOutfit(context.Background(), testUser, update))
	assert.Equal(t, layouts, f.outfits.outfits[0].ItemLayouts)
}

func TestUpdateOutfitErrors(t *testing.T) {
	f := newFixture()
	f.outfits.outfits = []models.Outfit{{
		ID: "outfit-1", UserID: "user-2", Name: "Look", Category: "Casual", ItemIDs: []string{"item-1"},
	}}

	update := OutfitUpdate{ID: "missing", Name: "Look", Category: "Casual", ItemIDs: []string{"item-1"}}
	assert.ErrorIs(t, f.svc.UpdateOutfit(context.Background(), testUser, update), ErrNotFound)

	update.ID = "outfit-1"
	assert.ErrorIs(t, f.svc.UpdateOutfit(context.Background(), testUser, update), ErrUnauthorized)
}

func TestDeleteOutfitScrubsPlanner(t *testing.T) {
	f := newFixture()
	f.outfits.outfits = []models.Outfit{
		{ID: "outfit-1", UserID: testUser, Name: "Look", Category: "Casual", ItemIDs: []string{"item-1"}},
	}
	f.planner.entries = []models.PlannerEntry{
		{ID: "p1", UserID: testUser, Date: "2026-09-01", OutfitIDs: []string{"outfit-1", "outfit-2"}},
		{ID: "p2", UserID: testUser, Date: "2026-09-02", OutfitIDs: []string{"outfit-1"}},
		{ID: "p3", UserID: "user-2", Date: "2026-09-01", OutfitIDs: []string{"outfit-1"}},
	}

	require.NoError(t, f.svc.DeleteOutfit(context.Background(), testUser, "outfit-1"))

	assert.Empty(t, f.outfits.outfits)
	// The entry that still schedules another outfit is kept; the one left
	// empty is removed; other users' entries are untouched.
	require.Len(t, f.planner.entries, 2)
	assert.Equal(t, []string{"outfit-2"}, f.planner.entries[0].OutfitIDs)
	assert.Equal(t, "user-2", f.planner.entries[1].UserID)
}

func TestDeleteOutfitIdempotent(t *testing.T) {
	f := newFixture()

	// Deleting an outfit that never existed is a success.
	assert.NoError(t, f.svc.DeleteOutfit(context.Background(), testUser, "missing"))
}

func TestDeleteOutfitOwnership(t *testing.T) {
	f := newFixture()
	f.outfits.outfits = []models.Outfit{
		{ID: "outfit-1", UserID: "user-2", Name: "Look", Category: "Casual", ItemIDs: []string{"item-1"}},
	}

	assert.ErrorIs(t, f.svc.DeleteOutfit(context.Background(), testUser, "outfit-1"), ErrUnauthorized)
	assert.Len(t, f.outfits.outfits, 1)
}
