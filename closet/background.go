package closet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stylgpt/closet/ai"
)

// ProcessedPhoto is the result of a background-removal run: the stored
// copy's signed URL and its storage key.
type ProcessedPhoto struct {
	PhotoURL    string `json:"photoUrl"`
	StoragePath string `json:"storagePath"`
}

// AnalyzePhoto classifies a clothing photo into structured attributes.
func (s *Service) AnalyzePhoto(ctx context.Context, photoDataURI string) (*ai.ItemAttributes, error) {
	if photoDataURI == "" {
		return nil, validationErr("no photo data provided")
	}
	attrs, err := s.analyze.AnalyzeItem(ctx, photoDataURI)
	if err != nil {
		return nil, remoteErr("AI analysis failed", err)
	}
	return attrs, nil
}

// RemoveBackground sends the photo through the background-removal service
// and stores the processed PNG under the caller's prefix.
func (s *Service) RemoveBackground(ctx context.Context, userID, photoDataURI string) (*ProcessedPhoto, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	mimeType, imageData, err := ai.DecodeDataURI(photoDataURI)
	if err != nil {
		return nil, validationErr("invalid photo data: %v", err)
	}

	processed, err := s.rembg.Remove(ctx, imageData, mimeType)
	if err != nil {
		return nil, remoteErr("failed to remove background", err)
	}

	key := fmt.Sprintf("processed-items/%s/%s.png", userID, uuid.NewString())
	if err := s.photos.Upload(ctx, bytes.NewReader(processed), key, "image/png"); err != nil {
		return nil, remoteErr("failed to store processed photo", err)
	}
	signedURL, err := s.photos.SignedURL(ctx, key)
	if err != nil {
		return nil, remoteErr("failed to sign photo URL", err)
	}

	return &ProcessedPhoto{PhotoURL: signedURL, StoragePath: key}, nil
}
