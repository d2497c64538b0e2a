package closet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/models"
)

func inventory() []models.ClothingItem {
	return []models.ClothingItem{
		{ID: "item-1", Type: "shirt", Color: "blue"},
		{ID: "item-2", Type: "jeans", Color: "black"},
		{ID: "item-3", Type: "shirt", Color: "blue"},
		{ID: "item-4", Type: "jacket", Color: "green"},
	}
}

func TestReconcileItemsExactMatch(t *testing.T) {
	ids := ReconcileItems([]ai.ItemRef{
		{Type: "jeans", Color: "black"},
		{Type: "jacket", Color: "green"},
	}, inventory())

	assert.Equal(t, []string{"item-2", "item-4"}, ids)
}

func TestReconcileItemsFirstMatchWins(t *testing.T) {
	// Two blue shirts in inventory; the earliest one is always chosen.
	ids := ReconcileItems([]ai.ItemRef{
		{Type: "shirt", Color: "blue"},
	}, inventory())

	assert.Equal(t, []string{"item-1"}, ids)
}

func TestReconcileItemsDuplicateRefsMapToSameItem(t *testing.T) {
	ids := ReconcileItems([]ai.ItemRef{
		{Type: "shirt", Color: "blue"},
		{Type: "shirt", Color: "blue"},
	}, inventory())

	assert.Equal(t, []string{"item-1", "item-1"}, ids)
}

func TestReconcileItemsDropsUnmatchedRefs(t *testing.T) {
	ids := ReconcileItems([]ai.ItemRef{
		{Type: "shirt", Color: "blue"},
		{Type: "hat", Color: "red"},
		{Type: "jeans", Color: "black"},
	}, inventory())

	// The unknown hat is silently dropped; relative order is preserved.
	assert.Equal(t, []string{"item-1", "item-2"}, ids)
}

func TestReconcileItemsNoPartialMatch(t *testing.T) {
	// Matching type with the wrong color is not a match.
	ids := ReconcileItems([]ai.ItemRef{
		{Type: "shirt", Color: "red"},
	}, inventory())

	assert.Empty(t, ids)
}

func TestReconcileItemsEmptyInputs(t *testing.T) {
	assert.Empty(t, ReconcileItems(nil, inventory()))
	assert.Empty(t, ReconcileItems([]ai.ItemRef{{Type: "shirt", Color: "blue"}}, nil))
}
