// Package closet implements the wardrobe, outfit and planner workflows:
// AI outfit generation with item reconciliation, validated persistence,
// and the cascading cleanup that keeps cross-collection references sound.
package closet

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/models"
)

// ItemStore persists clothing items. Get returns (nil, nil) for a missing
// item; the service decides whether that is an error.
type ItemStore interface {
	Insert(ctx context.Context, items []models.ClothingItem) error
	Get(ctx context.Context, id string) (*models.ClothingItem, error)
	ListVisible(ctx context.Context, userID string) ([]models.ClothingItem, error)
	Update(ctx context.Context, item *models.ClothingItem) error
	Delete(ctx context.Context, ids []string) error
	DeleteByOwner(ctx context.Context, userID string) error
}

// OutfitStore persists outfits and scrubs item references on item deletion.
type OutfitStore interface {
	Insert(ctx context.Context, outfit *models.Outfit) error
	Get(ctx context.Context, id string) (*models.Outfit, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Outfit, error)
	Replace(ctx context.Context, outfit *models.Outfit) error
	Delete(ctx context.Context, id string) error
	// RemoveItemRefs removes every occurrence of the given item IDs from the
	// owner's outfits. Outfits are updated, never deleted, even if emptied.
	RemoveItemRefs(ctx context.Context, userID string, itemIDs []string) error
	DeleteByOwner(ctx context.Context, userID string) error
}

// PlannerStore persists per-date outfit schedules.
type PlannerStore interface {
	ListByOwner(ctx context.Context, userID string) ([]models.PlannerEntry, error)
	Get(ctx context.Context, userID, date string) (*models.PlannerEntry, error)
	Upsert(ctx context.Context, entry *models.PlannerEntry) error
	Delete(ctx context.Context, userID, date string) error
	// RemoveOutfitRef removes the outfit ID from the owner's entries and
	// deletes any entry whose outfit set becomes empty.
	RemoveOutfitRef(ctx context.Context, userID, outfitID string) error
	DeleteByOwner(ctx context.Context, userID string) error
}

// ProfileStore persists user profiles. Get returns (nil, nil) when the
// profile has not been created yet.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*models.UserProfile, error)
	Put(ctx context.Context, profile *models.UserProfile) error
	Delete(ctx context.Context, uid string) error
}

// AccountStore removes auth records on account deletion.
type AccountStore interface {
	Delete(ctx context.Context, uid string) error
}

// PhotoStore stores wardrobe photos in blob storage.
type PhotoStore interface {
	Upload(ctx context.Context, file io.Reader, key, contentType string) error
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string) (string, error)
}

// Suggester is the remote outfit suggestion engine.
type Suggester interface {
	SuggestOutfits(ctx context.Context, req ai.SuggestionRequest) ([]ai.OutfitCandidate, error)
}

// Analyzer classifies clothing photos.
type Analyzer interface {
	AnalyzeItem(ctx context.Context, photoDataURI string) (*ai.ItemAttributes, error)
}

// Remover is the remote background-removal service.
type Remover interface {
	Remove(ctx context.Context, image []byte, mimeType string) ([]byte, error)
}

// Deps collects the collaborators a Service needs. All fields except
// HTTPClient are required.
type Deps struct {
	Items    ItemStore
	Outfits  OutfitStore
	Planner  PlannerStore
	Profiles ProfileStore
	Accounts AccountStore
	Photos   PhotoStore
	Suggest  Suggester
	Analyze  Analyzer
	Rembg    Remover

	// HTTPClient fetches catalog photos during adoption; defaults to a
	// client with a 30s timeout.
	HTTPClient *http.Client
}

// Service wires the stores and remote collaborators together. Construct
// once in main and share; it holds no per-request state.
type Service struct {
	items    ItemStore
	outfits  OutfitStore
	planner  PlannerStore
	profiles ProfileStore
	accounts AccountStore
	photos   PhotoStore
	suggest  Suggester
	analyze  Analyzer
	rembg    Remover
	http     *http.Client
}

// New builds a Service from its dependencies.
func New(deps Deps) *Service {
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{
		items:    deps.Items,
		outfits:  deps.Outfits,
		planner:  deps.Planner,
		profiles: deps.Profiles,
		accounts: deps.Accounts,
		photos:   deps.Photos,
		suggest:  deps.Suggest,
		analyze:  deps.Analyze,
		rembg:    deps.Rembg,
		http:     httpClient,
	}
}
