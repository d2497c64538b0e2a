package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stylgpt/closet/models"
)

// ItemStore persists clothing items in the wardrobe collection.
type ItemStore struct {
	collection *mongo.Collection
}

func NewItemStore(db *mongo.Database) *ItemStore {
	return &ItemStore{collection: db.Collection(wardrobeCollection)}
}

func (s *ItemStore) Insert(ctx context.Context, items []models.ClothingItem) error {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := s.collection.InsertMany(ctx, docs)
	return err
}

func (s *ItemStore) Get(ctx context.Context, id string) (*models.ClothingItem, error) {
	var item models.ClothingItem
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListVisible returns the user's own items plus public catalog items
// (those with no owner).
func (s *ItemStore) ListVisible(ctx context.Context, userID string) ([]models.ClothingItem, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"user_id": userID},
		bson.M{"user_id": nil},
	}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ClothingItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ItemStore) Update(ctx context.Context, item *models.ClothingItem) error {
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	return err
}

func (s *ItemStore) Delete(ctx context.Context, ids []string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (s *ItemStore) DeleteByOwner(ctx context.Context, userID string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
