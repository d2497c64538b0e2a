package closet

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/models"
)

// minInventorySize is the smallest inventory worth sending to the
// suggestion engine; below it the call is rejected locally.
const minInventorySize = 2

const defaultRequirements = "No specific requirements."

// GeneratedOutfit is one suggestion-engine candidate after reconciliation:
// same name, description and category, but concrete item IDs from the
// caller's inventory. Nothing is persisted until the caller accepts it.
type GeneratedOutfit struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ItemIDs     []string `json:"itemIds"`
}

// GenerateOutfits runs the full suggestion flow: gather the caller's
// visible inventory, existing outfits and preferences, invoke the remote
// engine, and reconcile each candidate's generic item references back to
// inventory IDs. Either three reconciled candidates come back or the whole
// call fails; no partial results.
func (s *Service) GenerateOutfits(ctx context.Context, userID, stylePreferences, requirements string) ([]GeneratedOutfit, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	if stylePreferences == "" {
		return nil, validationErr("style preferences are required")
	}

	// The three reads are independent; fetch them concurrently.
	var (
		items   []models.ClothingItem
		outfits []models.Outfit
		profile *models.UserProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.items.ListVisible(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		outfits, err = s.outfits.ListByOwner(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.profiles.Get(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, remoteErr("failed to load wardrobe", err)
	}

	// Too small an inventory: reject before any remote call is made.
	if len(items) < minInventorySize {
		return nil, validationErr("not enough clothing items to generate an outfit; add at least two")
	}

	if requirements == "" {
		requirements = defaultRequirements
	}
	unusedPreference := models.UnusedPreferenceMedium
	if profile != nil {
		unusedPreference = profile.UnusedItemPreference
	}

	req := ai.SuggestionRequest{
		Items:              stripIdentifiers(items),
		StylePreferences:   stylePreferences,
		Requirements:       requirements,
		ExistingOutfits:    summarizeOutfits(outfits, items),
		UnusedItemPriority: models.UnusedItemWeight(unusedPreference),
	}

	candidates, err := s.suggest.SuggestOutfits(ctx, req)
	if err != nil {
		return nil, remoteErr("failed to generate outfit", err)
	}

	generated := make([]GeneratedOutfit, 0, len(candidates))
	for _, cand := range candidates {
		generated = append(generated, GeneratedOutfit{
			Name:        cand.Name,
			Description: cand.Description,
			Category:    cand.Category,
			ItemIDs:     ReconcileItems(cand.ItemsUsed, items),
		})
	}
	return generated, nil
}

// stripIdentifiers reduces inventory to the attribute tuples the model is
// allowed to see.
func stripIdentifiers(items []models.ClothingItem) []ai.InventoryItem {
	out := make([]ai.InventoryItem, 0, len(items))
	for _, item := range items {
		brand := item.Brand
		if brand == "" {
			brand = "Unknown"
		}
		out = append(out, ai.InventoryItem{
			Type:    item.Type,
			Color:   item.Color,
			Texture: item.Texture,
			Brand:   brand,
			Fit:     item.Fit,
			Season:  item.Season,
		})
	}
	return out
}

// summarizeOutfits describes existing outfits for novelty weighting using
// the same generic attributes; stored item IDs never cross the AI boundary.
func summarizeOutfits(outfits []models.Outfit, items []models.ClothingItem) []ai.OutfitSummary {
	byID := make(map[string]models.ClothingItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	summaries := make([]ai.OutfitSummary, 0, len(outfits))
	for _, outfit := range outfits {
		summary := ai.OutfitSummary{Name: outfit.Name}
		for _, id := range outfit.ItemIDs {
			if item, ok := byID[id]; ok {
				summary.ItemsUsed = append(summary.ItemsUsed, ai.ItemRef{Type: item.Type, Color: item.Color})
			}
			// Stale references resolve to nothing; skip them.
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
