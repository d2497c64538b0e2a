package closet

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/blob"
	"github.com/stylgpt/closet/models"
)

// NewItem is the payload for adding one wardrobe item. Items with empty
// attributes are treated as public-catalog picks: the photo is fetched,
// copied into the user's storage prefix and analyzed by the AI.
type NewItem struct {
	PhotoURL    string `json:"photoUrl"`
	StoragePath string `json:"storagePath"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Texture     string `json:"texture"`
	Brand       string `json:"brand"`
	Fit         string `json:"fit"`
	Season      string `json:"season"`
}

// ItemUpdate is the payload for editing an item's attributes. All
// attribute fields are required.
type ItemUpdate struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Color   string `json:"color"`
	Texture string `json:"texture"`
	Brand   string `json:"brand"`
	Fit     string `json:"fit"`
	Season  string `json:"season"`
}

// VisibleItems returns the caller's items plus public catalog items.
func (s *Service) VisibleItems(ctx context.Context, userID string) ([]models.ClothingItem, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	return s.items.ListVisible(ctx, userID)
}

// AddItems creates a batch of wardrobe items for the caller. Direct
// uploads arrive with attributes already filled in; catalog picks are
// fetched, re-uploaded under the user's prefix, and analyzed before insert.
func (s *Service) AddItems(ctx context.Context, userID string, inputs []NewItem) ([]models.ClothingItem, error) {
	if userID == "" {
		return nil, unauthorizedErr("user not authenticated")
	}
	if len(inputs) == 0 {
		return nil, validationErr("at least one item is required")
	}

	now := time.Now()
	items := make([]models.ClothingItem, 0, len(inputs))
	for i, input := range inputs {
		if input.PhotoURL == "" {
			return nil, validationErr("item %d: image is required", i)
		}

		item := models.ClothingItem{
			ID:          uuid.NewString(),
			UserID:      &userID,
			PhotoURL:    input.PhotoURL,
			StoragePath: input.StoragePath,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if input.Type == "" {
			// Catalog pick: copy the photo into the user's prefix and let
			// the analyzer fill in the attributes.
			if err := s.adoptCatalogItem(ctx, userID, input.PhotoURL, &item); err != nil {
				return nil, err
			}
		} else {
			if input.Color == "" || input.Texture == "" || input.Fit == "" {
				return nil, validationErr("item %d: color, texture and fit are required", i)
			}
			if !models.IsValidSeason(input.Season) {
				return nil, validationErr("item %d: invalid season %q", i, input.Season)
			}
			item.Type = input.Type
			item.Color = input.Color
			item.Texture = input.Texture
			item.Fit = input.Fit
			item.Season = input.Season
			item.Brand = input.Brand
			if item.Brand == "" {
				item.Brand = "Unknown"
			}
		}
		items = append(items, item)
	}

	if err := s.items.Insert(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to save items: %w", err)
	}
	return items, nil
}

// adoptCatalogItem fetches the public photo, stores a private copy and
// fills the item's attributes from AI analysis.
func (s *Service) adoptCatalogItem(ctx context.Context, userID, photoURL string, item *models.ClothingItem) error {
	imageData, mimeType, err := s.fetchPhoto(ctx, photoURL)
	if err != nil {
		return remoteErr("failed to fetch catalog photo", err)
	}

	ext := extensionFor(mimeType)
	key := fmt.Sprintf("wardrobe-items/%s/%s.%s", userID, uuid.NewString(), ext)
	if err := s.photos.Upload(ctx, bytes.NewReader(imageData), key, mimeType); err != nil {
		return remoteErr("failed to store photo", err)
	}

	signedURL, err := s.photos.SignedURL(ctx, key)
	if err != nil {
		return remoteErr("failed to sign photo URL", err)
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))
	attrs, err := s.analyze.AnalyzeItem(ctx, dataURI)
	if err != nil {
		return remoteErr("failed to analyze photo", err)
	}

	item.PhotoURL = signedURL
	item.StoragePath = key
	item.Type = attrs.Type
	item.Color = attrs.Color
	item.Texture = attrs.Texture
	item.Brand = attrs.Brand
	item.Fit = attrs.Fit
	item.Season = attrs.Season
	return nil
}

// UpdateItem edits an item's attributes. Public items (nil owner) may be
// edited by anyone; only a non-nil mismatched owner is rejected.
func (s *Service) UpdateItem(ctx context.Context, userID string, update ItemUpdate) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}
	if update.ID == "" {
		return validationErr("item ID is required")
	}
	if update.Type == "" || update.Color == "" || update.Texture == "" || update.Fit == "" {
		return validationErr("type, color, texture and fit are required")
	}
	if !models.IsValidSeason(update.Season) {
		return validationErr("invalid season %q", update.Season)
	}

	item, err := s.items.Get(ctx, update.ID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFoundErr("item %s", update.ID)
	}
	if item.UserID != nil && *item.UserID != userID {
		return unauthorizedErr("you are not authorized to update this item")
	}

	item.Type = update.Type
	item.Color = update.Color
	item.Texture = update.Texture
	item.Fit = update.Fit
	item.Season = update.Season
	item.Brand = update.Brand
	if item.Brand == "" {
		item.Brand = "Unknown"
	}
	item.UpdatedAt = time.Now()
	return s.items.Update(ctx, item)
}

// ReplaceItemPhoto swaps an item's stored photo for a new one supplied as
// a data URI. The old object is deleted best-effort.
func (s *Service) ReplaceItemPhoto(ctx context.Context, userID, itemID, photoDataURI string) (string, error) {
	if userID == "" {
		return "", unauthorizedErr("user not authenticated")
	}
	if itemID == "" {
		return "", validationErr("item ID is required")
	}

	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", notFoundErr("item %s", itemID)
	}
	if item.UserID != nil && *item.UserID != userID {
		return "", unauthorizedErr("you are not authorized to update this item")
	}

	mimeType, imageData, err := ai.DecodeDataURI(photoDataURI)
	if err != nil {
		return "", validationErr("invalid photo data: %v", err)
	}

	if item.StoragePath != "" {
		if err := s.deletePhoto(ctx, item.StoragePath); err != nil {
			return "", err
		}
	}

	key := fmt.Sprintf("wardrobe-items/%s/%s.%s", userID, uuid.NewString(), extensionFor(mimeType))
	if err := s.photos.Upload(ctx, bytes.NewReader(imageData), key, mimeType); err != nil {
		return "", remoteErr("failed to store photo", err)
	}
	signedURL, err := s.photos.SignedURL(ctx, key)
	if err != nil {
		return "", remoteErr("failed to sign photo URL", err)
	}

	item.PhotoURL = signedURL
	item.StoragePath = key
	item.UpdatedAt = time.Now()
	if err := s.items.Update(ctx, item); err != nil {
		return "", err
	}
	return signedURL, nil
}

// DeleteItem removes a single item; see DeleteItems for semantics.
func (s *Service) DeleteItem(ctx context.Context, userID, itemID string) error {
	if itemID == "" {
		return validationErr("item ID is required")
	}
	return s.DeleteItems(ctx, userID, []string{itemID})
}

// DeleteItems removes a batch of items. Missing items are skipped
// (deleting twice is a no-op), but a single ownership failure rejects the
// whole batch before anything is deleted. Stored photos are removed
// best-effort, then the documents, then every reference from the owner's
// outfits. Outfits are only ever updated here, never deleted.
func (s *Service) DeleteItems(ctx context.Context, userID string, itemIDs []string) error {
	if userID == "" {
		return unauthorizedErr("user not authenticated")
	}
	if len(itemIDs) == 0 {
		return validationErr("at least one item ID is required")
	}

	// Ownership pass first: no partial deletions on a rejected batch.
	existing := make([]models.ClothingItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.items.Get(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		if item.UserID != nil && *item.UserID != userID {
			return unauthorizedErr("you are not authorized to delete item %s", id)
		}
		existing = append(existing, *item)
	}
	if len(existing) == 0 {
		return nil
	}

	ids := make([]string, 0, len(existing))
	for _, item := range existing {
		if item.StoragePath != "" {
			if err := s.deletePhoto(ctx, item.StoragePath); err != nil {
				return err
			}
		}
		ids = append(ids, item.ID)
	}

	if err := s.items.Delete(ctx, ids); err != nil {
		return err
	}

	// Scrub dangling references. A crash before this point leaves harmless
	// stale IDs that resolve to nothing at render time.
	return s.outfits.RemoveItemRefs(ctx, userID, ids)
}

// deletePhoto removes a stored photo. A missing object is logged and
// tolerated; any other storage failure propagates.
func (s *Service) deletePhoto(ctx context.Context, storagePath string) error {
	err := s.photos.Delete(ctx, storagePath)
	if err == nil {
		return nil
	}
	if errors.Is(err, blob.ErrObjectNotFound) {
		log.Printf("Photo not found in storage, continuing: %s", storagePath)
		return nil
	}
	return remoteErr("failed to delete photo", err)
}

func (s *Service) fetchPhoto(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch photo, status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}

func extensionFor(mimeType string) string {
	if parts := strings.Split(mimeType, "/"); len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return "jpg"
}
