package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylgpt/closet/models"
)

// ProfileStore persists user profiles, keyed by the auth UID.
type ProfileStore struct {
	collection *mongo.Collection
}

func NewProfileStore(db *mongo.Database) *ProfileStore {
	return &ProfileStore{collection: db.Collection(profilesCollection)}
}

func (s *ProfileStore) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileStore) Put(ctx context.Context, profile *models.UserProfile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": profile.UID}, profile, opts)
	return err
}

func (s *ProfileStore) Delete(ctx context.Context, uid string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": uid})
	return err
}
