package ai

// InventoryItem is a clothing item as presented to the suggestion model.
// Internal identifiers are deliberately absent: the model reasons over
// human-readable attributes only and must never see or fabricate IDs.
type InventoryItem struct {
	Type    string `json:"type"`
	Color   string `json:"color"`
	Texture string `json:"texture"`
	Brand   string `json:"brand"`
	Fit     string `json:"fit"`
	Season  string `json:"season"`
}

// ItemRef identifies an inventory item by its generic attributes. This is
// how the model refers back to items; reconciliation maps refs to IDs.
type ItemRef struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// OutfitSummary describes one of the user's existing outfits for novelty
// weighting, again without identifiers.
type OutfitSummary struct {
	Name      string    `json:"name"`
	ItemsUsed []ItemRef `json:"itemsUsed"`
}

// SuggestionRequest is the structured input for one generation call.
type SuggestionRequest struct {
	Items              []InventoryItem `json:"clothingItems"`
	StylePreferences   string          `json:"stylePreferences"`
	Requirements       string          `json:"outfitRequirements,omitempty"`
	ExistingOutfits    []OutfitSummary `json:"existingOutfits,omitempty"`
	UnusedItemPriority float64         `json:"unusedItemPriority,omitempty"`
}

// OutfitCandidate is one model-proposed outfit, expressed in generic
// attributes and not yet reconciled to concrete inventory IDs.
type OutfitCandidate struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ItemsUsed   []ItemRef `json:"itemsUsed"`
}

// ItemAttributes is the result of analyzing a clothing photo.
type ItemAttributes struct {
	Type    string `json:"type"`
	Color   string `json:"color"`
	Texture string `json:"texture"`
	Brand   string `json:"brand"`
	Fit     string `json:"fit"`
	Season  string `json:"season"`
}
