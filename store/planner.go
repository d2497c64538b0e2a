package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylgpt/closet/models"
)

// PlannerStore persists per-date outfit schedules, keyed by (user, date).
type PlannerStore struct {
	collection *mongo.Collection
}

func NewPlannerStore(db *mongo.Database) *PlannerStore {
	return &PlannerStore{collection: db.Collection(plannerCollection)}
}

func (s *PlannerStore) ListByOwner(ctx context.Context, userID string) ([]models.PlannerEntry, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.PlannerEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *PlannerStore) Get(ctx context.Context, userID, date string) (*models.PlannerEntry, error) {
	var entry models.PlannerEntry
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *PlannerStore) Upsert(ctx context.Context, entry *models.PlannerEntry) error {
	filter := bson.M{"user_id": entry.UserID, "date": entry.Date}
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, filter, entry, opts)
	return err
}

func (s *PlannerStore) Delete(ctx context.Context, userID, date string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID, "date": date})
	return err
}

// RemoveOutfitRef pulls the outfit ID from the user's entries, then
// deletes any entry left with no outfits.
func (s *PlannerStore) RemoveOutfitRef(ctx context.Context, userID, outfitID string) error {
	filter := bson.M{"user_id": userID, "outfit_ids": outfitID}
	update := bson.M{"$pull": bson.M{"outfit_ids": outfitID}}
	if _, err := s.collection.UpdateMany(ctx, filter, update); err != nil {
		return err
	}

	empty := bson.M{"user_id": userID, "outfit_ids": bson.M{"$size": 0}}
	_, err := s.collection.DeleteMany(ctx, empty)
	return err
}

func (s *PlannerStore) DeleteByOwner(ctx context.Context, userID string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
