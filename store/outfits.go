package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stylgpt/closet/models"
)

// OutfitStore persists outfits.
type OutfitStore struct {
	collection *mongo.Collection
}

func NewOutfitStore(db *mongo.Database) *OutfitStore {
	return &OutfitStore{collection: db.Collection(outfitsCollection)}
}

func (s *OutfitStore) Insert(ctx context.Context, outfit *models.Outfit) error {
	_, err := s.collection.InsertOne(ctx, outfit)
	return err
}

func (s *OutfitStore) Get(ctx context.Context, id string) (*models.Outfit, error) {
	var outfit models.Outfit
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&outfit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &outfit, nil
}

func (s *OutfitStore) ListByOwner(ctx context.Context, userID string) ([]models.Outfit, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var outfits []models.Outfit
	if err := cursor.All(ctx, &outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

func (s *OutfitStore) Replace(ctx context.Context, outfit *models.Outfit) error {
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": outfit.ID}, outfit)
	return err
}

func (s *OutfitStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// RemoveItemRefs pulls the given item IDs out of every outfit the user
// owns that references any of them. Emptied outfits are kept.
func (s *OutfitStore) RemoveItemRefs(ctx context.Context, userID string, itemIDs []string) error {
	filter := bson.M{
		"user_id":  userID,
		"item_ids": bson.M{"$in": itemIDs},
	}
	update := bson.M{"$pull": bson.M{"item_ids": bson.M{"$in": itemIDs}}}
	_, err := s.collection.UpdateMany(ctx, filter, update)
	return err
}

func (s *OutfitStore) DeleteByOwner(ctx context.Context, userID string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
