package closet

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stylgpt/closet/models"
)

// OutfitDraft is the payload for creating an outfit, either assembled by
// hand or accepted from a generation candidate.
type OutfitDraft struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Category    string                       `json:"category"`
	ItemIDs     []string                     `json:"itemIds"`
	ItemLayouts map[string]models.ItemLayout `json:"itemLayouts,omitempty"`
}

// OutfitUpdate is the payload for editing an outfit. ItemLayouts is a
// pointer so "field omitted" (keep the stored layout) is distinguishable
// from "explicitly empty" (clear it).
type OutfitUpdate struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Category    string                        `json:"category"`
	ItemIDs     []string                      `json:"itemIds"`
	ItemLayouts *map[string]models.ItemLayout `json:"itemLayouts,omitempty"`
}

// Outfits lists the caller's outfits.
func (s *Service) Outfits(ctx context.Context, userID string) ([]models.Outfit, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	return s.outfits.ListByOwner(ctx, userID)
}

func validateOutfitFields(name, category string, itemIDs []string) error {
	if strings.TrimSpace(name) == "" {
		return validationErr("outfit name is required")
	}
	if !models.IsValidCategory(category) {
		return validationErr("invalid outfit category %q", category)
	}
	if len(itemIDs) == 0 {
		return validationErr("an outfit needs at least one item")
	}
	return nil
}

// CreateOutfit validates and persists a new outfit. Validation happens
// before any write; on failure nothing is stored.
func (s *Service) CreateOutfit(ctx context.Context, userID string, draft OutfitDraft) (*models.Outfit, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	if err := validateOutfitFields(draft.Name, draft.Category, draft.ItemIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	outfit := &models.Outfit{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		ItemIDs:     draft.ItemIDs,
		ItemLayouts: draft.ItemLayouts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.outfits.Insert(ctx, outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

// UpdateOutfit edits an existing outfit owned by the caller. A nil
// ItemLayouts pointer leaves the stored layout untouched; a non-nil empty
// map clears it.
func (s *Service) UpdateOutfit(ctx context.Context, userID string, update OutfitUpdate) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}
	if update.ID == "" {
		return validationErr("outfit ID is required")
	}
	if err := validateOutfitFields(update.Name, update.Category, update.ItemIDs); err != nil {
		return err
	}

	outfit, err := s.outfits.Get(ctx, update.ID)
	if err != nil {
		return err
	}
	if outfit == nil {
		return notFoundErr("outfit %s", update.ID)
	}
	if outfit.UserID != userID {
		return unauthorizedErr("you are not authorized to update this outfit")
	}

	outfit.Name = update.Name
	outfit.Description = update.Description
	outfit.Category = update.Category
	outfit.ItemIDs = update.ItemIDs
	if update.ItemLayouts != nil {
		if len(*update.ItemLayouts) == 0 {
			outfit.ItemLayouts = nil
		} else {
			outfit.ItemLayouts = *update.ItemLayouts
		}
	}
	outfit.UpdatedAt = time.Now()
	return s.outfits.Replace(ctx, outfit)
}

// DeleteOutfit removes an outfit and scrubs it from the owner's planner
// entries; entries left empty are deleted outright. Deleting an outfit
// that no longer exists is a success.
func (s *Service) DeleteOutfit(ctx context.Context, userID, outfitID string) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}
	if outfitID == "" {
		return validationErr("outfit ID is required")
	}

	outfit, err := s.outfits.Get(ctx, outfitID)
	if err != nil {
		return err
	}
	if outfit == nil {
		log.Printf("Outfit %s not found, treating delete as no-op", outfitID)
		return nil
	}
	if outfit.UserID != userID {
		return unauthorizedErr("you are not authorized to delete this outfit")
	}

	if err := s.outfits.Delete(ctx, outfitID); err != nil {
		return err
	}
	return s.planner.RemoveOutfitRef(ctx, userID, outfitID)
}
