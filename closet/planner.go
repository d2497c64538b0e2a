package closet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stylgpt/closet/models"
)

const plannerDateLayout = "2006-01-02"

// PlannerEntries lists the caller's planner entries.
func (s *Service) PlannerEntries(ctx context.Context, userID string) ([]models.PlannerEntry, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	return s.planner.ListByOwner(ctx, userID)
}

// SavePlannerEntry upserts the outfit schedule for one date. An empty
// outfit set deletes the entry: empty entries are never stored.
func (s *Service) SavePlannerEntry(ctx context.Context, userID, date string, outfitIDs []string) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}
	if _, err := time.Parse(plannerDateLayout, date); err != nil {
		return validationErr("invalid date %q, expected YYYY-MM-DD", date)
	}

	if len(outfitIDs) == 0 {
		// Deleting a missing entry is a no-op.
		return s.planner.Delete(ctx, userID, date)
	}

	entry, err := s.planner.Get(ctx, userID, date)
	if err != nil {
		return err
	}
	if entry == nil {
		entry = &models.PlannerEntry{
			ID:     uuid.NewString(),
			UserID: userID,
			Date:   date,
		}
	}
	entry.OutfitIDs = outfitIDs
	return s.planner.Upsert(ctx, entry)
}
