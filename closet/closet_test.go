package closet

import (
	"context"
	"errors"
	"io"

	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/blob"
	"github.com/stylgpt/closet/models"
)

// In-memory fakes for the store and remote-service interfaces. Slices keep
// insertion order so list results are deterministic.

type fakeItemStore struct {
	items []models.ClothingItem
}

func (f *fakeItemStore) Insert(_ context.Context, items []models.ClothingItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeItemStore) Get(_ context.Context, id string) (*models.ClothingItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeItemStore) ListVisible(_ context.Context, userID string) ([]models.ClothingItem, error) {
	var out []models.ClothingItem
	for _, item := range f.items {
		if item.UserID == nil || *item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemStore) Update(_ context.Context, item *models.ClothingItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
		}
	}
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, ids []string) error {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.items[:0]
	for _, item := range f.items {
		if !drop[item.ID] {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeItemStore) DeleteByOwner(_ context.Context, userID string) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.UserID == nil || *item.UserID != userID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeOutfitStore struct {
	outfits []models.Outfit
}

func (f *fakeOutfitStore) Insert(_ context.Context, outfit *models.Outfit) error {
	f.outfits = append(f.outfits, *outfit)
	return nil
}

func (f *fakeOutfitStore) Get(_ context.Context, id string) (*models.Outfit, error) {
	for i := range f.outfits {
		if f.outfits[i].ID == id {
			outfit := f.outfits[i]
			return &outfit, nil
		}
	}
	return nil, nil
}

func (f *fakeOutfitStore) ListByOwner(_ context.Context, userID string) ([]models.Outfit, error) {
	var out []models.Outfit
	for _, outfit := range f.outfits {
		if outfit.UserID == userID {
			out = append(out, outfit)
		}
	}
	return out, nil
}

func (f *fakeOutfitStore) Replace(_ context.Context, outfit *models.Outfit) error {
	for i := range f.outfits {
		if f.outfits[i].ID == outfit.ID {
			f.outfits[i] = *outfit
		}
	}
	return nil
}

func (f *fakeOutfitStore) Delete(_ context.Context, id string) error {
	kept := f.outfits[:0]
	for _, outfit := range f.outfits {
		if outfit.ID != id {
			kept = append(kept, outfit)
		}
	}
	f.outfits = kept
	return nil
}

func (f *fakeOutfitStore) RemoveItemRefs(_ context.Context, userID string, itemIDs []string) error {
	drop := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = true
	}
	for i := range f.outfits {
		if f.outfits[i].UserID != userID {
			continue
		}
		kept := make([]string, 0, len(f.outfits[i].ItemIDs))
		for _, id := range f.outfits[i].ItemIDs {
			if !drop[id] {
				kept = append(kept, id)
			}
		}
		f.outfits[i].ItemIDs = kept
	}
	return nil
}

func (f *fakeOutfitStore) DeleteByOwner(_ context.Context, userID string) error {
	kept := f.outfits[:0]
	for _, outfit := range f.outfits {
		if outfit.UserID != userID {
			kept = append(kept, outfit)
		}
	}
	f.outfits = kept
	return nil
}

type fakePlannerStore struct {
	entries []models.PlannerEntry
}

func (f *fakePlannerStore) ListByOwner(_ context.Context, userID string) ([]models.PlannerEntry, error) {
	var out []models.PlannerEntry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakePlannerStore) Get(_ context.Context, userID, date string) (*models.PlannerEntry, error) {
	for i := range f.entries {
		if f.entries[i].UserID == userID && f.entries[i].Date == date {
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (f *fakePlannerStore) Upsert(_ context.Context, entry *models.PlannerEntry) error {
	for i := range f.entries {
		if f.entries[i].UserID == entry.UserID && f.entries[i].Date == entry.Date {
			f.entries[i] = *entry
			return nil
		}
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakePlannerStore) Delete(_ context.Context, userID, date string) error {
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.UserID != userID || entry.Date != date {
			kept = append(kept, entry)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakePlannerStore) RemoveOutfitRef(_ context.Context, userID, outfitID string) error {
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.UserID == userID {
			ids := make([]string, 0, len(entry.OutfitIDs))
			for _, id := range entry.OutfitIDs {
				if id != outfitID {
					ids = append(ids, id)
				}
			}
			entry.OutfitIDs = ids
			if len(ids) == 0 {
				continue
			}
		}
		kept = append(kept, entry)
	}
	f.entries = kept
	return nil
}

func (f *fakePlannerStore) DeleteByOwner(_ context.Context, userID string) error {
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.UserID != userID {
			kept = append(kept, entry)
		}
	}
	f.entries = kept
	return nil
}

type fakeProfileStore struct {
	profiles map[string]models.UserProfile
}

func (f *fakeProfileStore) Get(_ context.Context, uid string) (*models.UserProfile, error) {
	if profile, ok := f.profiles[uid]; ok {
		return &profile, nil
	}
	return nil, nil
}

func (f *fakeProfileStore) Put(_ context.Context, profile *models.UserProfile) error {
	f.profiles[profile.UID] = *profile
	return nil
}

func (f *fakeProfileStore) Delete(_ context.Context, uid string) error {
	delete(f.profiles, uid)
	return nil
}

type fakeAccountStore struct {
	deleted []string
}

func (f *fakeAccountStore) Delete(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakePhotoStore struct {
	objects    map[string]string
	deleted    []string
	deleteErr  error
	signedBase string
}

func (f *fakePhotoStore) Upload(_ context.Context, _ io.Reader, key, contentType string) error {
	f.objects[key] = contentType
	return nil
}

func (f *fakePhotoStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.objects[key]; !ok {
		return blob.ErrObjectNotFound
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakePhotoStore) SignedURL(_ context.Context, key string) (string, error) {
	return f.signedBase + key, nil
}

type fakeSuggester struct {
	calls      int
	lastReq    ai.SuggestionRequest
	candidates []ai.OutfitCandidate
	err        error
}

func (f *fakeSuggester) SuggestOutfits(_ context.Context, req ai.SuggestionRequest) ([]ai.OutfitCandidate, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type fakeAnalyzer struct {
	calls int
	attrs ai.ItemAttributes
	err   error
}

func (f *fakeAnalyzer) AnalyzeItem(_ context.Context, _ string) (*ai.ItemAttributes, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	attrs := f.attrs
	return &attrs, nil
}

type fakeRemover struct {
	output []byte
	err    error
}

func (f *fakeRemover) Remove(_ context.Context, _ []byte, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

// fixture bundles a Service with the fakes behind it.
type fixture struct {
	items    *fakeItemStore
	outfits  *fakeOutfitStore
	planner  *fakePlannerStore
	profiles *fakeProfileStore
	accounts *fakeAccountStore
	photos   *fakePhotoStore
	suggest  *fakeSuggester
	analyze  *fakeAnalyzer
	rembg    *fakeRemover
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		items:    &fakeItemStore{},
		outfits:  &fakeOutfitStore{},
		planner:  &fakePlannerStore{},
		profiles: &fakeProfileStore{profiles: map[string]models.UserProfile{}},
		accounts: &fakeAccountStore{},
		photos: &fakePhotoStore{
			objects:    map[string]string{},
			signedBase: "https://photos.test/",
		},
		suggest: &fakeSuggester{},
		analyze: &fakeAnalyzer{attrs: ai.ItemAttributes{
			Type: "shirt", Color: "blue", Texture: "cotton",
			Brand: "Unknown", Fit: "regular", Season: models.SeasonAll,
		}},
		rembg: &fakeRemover{output: []byte("processed-png")},
	}
	f.svc = New(Deps{
		Items:    f.items,
		Outfits:  f.outfits,
		Planner:  f.planner,
		Profiles: f.profiles,
		Accounts: f.accounts,
		Photos:   f.photos,
		Suggest:  f.suggest,
		Analyze:  f.analyze,
		Rembg:    f.rembg,
	})
	return f
}

func strPtr(s string) *string { return &s }

var errBoom = errors.New("boom")
