package closet

import (
	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/models"
)

// ReconcileItems resolves the generic type/color pairs returned by the
// suggestion engine to concrete inventory item IDs. The model reasons over
// attributes, never identifiers, so its output has to be re-grounded in the
// caller's inventory before anything is persisted.
//
// Matching is exact on both type and color; the first matching item in
// store iteration order wins, and no disambiguation is attempted when
// several items share the same pair. Pairs that match nothing are silently
// dropped, preserving the relative order of the rest.
func ReconcileItems(refs []ai.ItemRef, inventory []models.ClothingItem) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		for i := range inventory {
			if inventory[i].Type == ref.Type && inventory[i].Color == ref.Color {
				ids = append(ids, inventory[i].ID)
				break
			}
		}
	}
	return ids
}
