package closet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylgpt/closet/models"
)

func TestSavePlannerEntryValidatesDate(t *testing.T) {
	f := newFixture()

	assert.ErrorIs(t, f.svc.SavePlannerEntry(context.Background(), testUser, "01-09-2026", []string{"outfit-1"}), ErrValidation)
	assert.ErrorIs(t, f.svc.SavePlannerEntry(context.Background(), testUser, "", []string{"outfit-1"}), ErrValidation)
	assert.Empty(t, f.planner.entries)
}

func TestSavePlannerEntryCreatesAndUpdates(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.svc.SavePlannerEntry(context.Background(), testUser, "2026-09-01", []string{"outfit-1"}))
	require.Len(t, f.planner.entries, 1)
	assert.NotEmpty(t, f.planner.entries[0].ID)

	// Saving the same date again replaces the outfit set, keeping one entry.
	require.NoError(t, f.svc.SavePlannerEntry(context.Background(), testUser, "2026-09-01", []string{"outfit-2", "outfit-3"}))
	require.Len(t, f.planner.entries, 1)
	assert.Equal(t, []string{"outfit-2", "outfit-3"}, f.planner.entries[0].OutfitIDs)
}

func TestSavePlannerEntryEmptySetDeletes(t *testing.T) {
	f := newFixture()
	f.planner.entries = []models.PlannerEntry{
		{ID: "p1", UserID: testUser, Date: "2026-09-01", OutfitIDs: []string{"outfit-1"}},
	}

	require.NoError(t, f.svc.SavePlannerEntry(context.Background(), testUser, "2026-09-01", nil))
	assert.Empty(t, f.planner.entries)

	// Clearing a date that has no entry is a no-op.
	assert.NoError(t, f.svc.SavePlannerEntry(context.Background(), testUser, "2026-09-02", nil))
}

func TestPlannerEntriesScopedToOwner(t *testing.T) {
	f := newFixture()
	f.planner.entries = []models.PlannerEntry{
		{ID: "p1", UserID: testUser, Date: "2026-09-01", OutfitIDs: []string{"outfit-1"}},
		{ID: "p2", UserID: "user-2", Date: "2026-09-01", OutfitIDs: []string{"outfit-9"}},
	}

	entries, err := f.svc.PlannerEntries(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ID)
}
