package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/stylgpt/closet/models"
)

const suggestionCount = 3

// suggestionSchema constrains the model to the exact response shape:
// three outfits, each with name, description, a category from the fixed
// list, and the generic type/color pairs of the items used.
func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"outfits": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"category": {
							Type: genai.TypeString,
							Enum: models.OutfitCategories,
						},
						"itemsUsed": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"type":  {Type: genai.TypeString},
									"color": {Type: genai.TypeString},
								},
								Required: []string{"type", "color"},
							},
						},
					},
					Required: []string{"name", "description", "category", "itemsUsed"},
				},
			},
		},
		Required: []string{"outfits"},
	}
}

// SuggestOutfits asks the model for exactly three outfit candidates built
// from the supplied inventory. Any transport or schema failure is returned
// as a single error; no partial results are produced.
func (c *Client) SuggestOutfits(ctx context.Context, req SuggestionRequest) ([]OutfitCandidate, error) {
	model := c.genai.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = suggestionSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	data, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return ParseCandidates(data)
}

// buildSuggestionPrompt renders the stylist prompt. Item attributes only;
// no identifiers cross this boundary.
func buildSuggestionPrompt(req SuggestionRequest) string {
	var b strings.Builder

	b.WriteString("You are a personal stylist helping users create outfits from their existing wardrobe.\n\n")
	fmt.Fprintf(&b, "Based on the user's clothing items and preferences, generate %d distinct outfit suggestions.\n", suggestionCount)
	b.WriteString("For each outfit, provide a unique name, a compelling description, the list of items used, and assign it to one of the following categories:\n")
	b.WriteString(strings.Join(models.OutfitCategories, ", "))
	b.WriteString("\n\nFollow these outfit best practices:\n")
	b.WriteString("- Ensure the outfit is appropriate for the specified season. Items marked 'all' can be used for any season.\n")
	b.WriteString("- Combine colors and textures that complement each other.\n")
	b.WriteString("- Consider the fit of the clothing items to create a balanced silhouette.\n")
	fmt.Fprintf(&b, "- A higher unused-item priority (currently %.1f on a scale of 0 to 1) means you should actively try to incorporate clothing items that have not been used in the user's existing outfits.\n", req.UnusedItemPriority)
	b.WriteString("- Only use items from the list below, and refer to each item by its exact type and color.\n")

	b.WriteString("\nExisting outfits:\n")
	if len(req.ExistingOutfits) == 0 {
		b.WriteString("No existing outfits provided.\n")
	}
	for _, outfit := range req.ExistingOutfits {
		refs := make([]string, 0, len(outfit.ItemsUsed))
		for _, ref := range outfit.ItemsUsed {
			refs = append(refs, fmt.Sprintf("%s (%s)", ref.Type, ref.Color))
		}
		fmt.Fprintf(&b, "- %s: %s\n", outfit.Name, strings.Join(refs, ", "))
	}

	fmt.Fprintf(&b, "\nUser style preferences: %s\n", req.StylePreferences)
	fmt.Fprintf(&b, "Outfit requirements: %s\n", req.Requirements)

	b.WriteString("\nClothing items:\n")
	for _, item := range req.Items {
		fmt.Fprintf(&b, "- %s (%s, %s, %s, %s, %s)\n",
			item.Type, item.Color, item.Texture, item.Brand, item.Fit, item.Season)
	}

	return b.String()
}

// ParseCandidates decodes and validates a suggestion response. The payload
// must contain exactly three well-formed candidates; anything else fails
// the whole call.
func ParseCandidates(data []byte) ([]OutfitCandidate, error) {
	var payload struct {
		Outfits []OutfitCandidate `json:"outfits"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("malformed suggestion response: %w", err)
	}

	if len(payload.Outfits) != suggestionCount {
		return nil, fmt.Errorf("suggestion response has %d outfits, expected %d", len(payload.Outfits), suggestionCount)
	}

	for i, outfit := range payload.Outfits {
		if strings.TrimSpace(outfit.Name) == "" {
			return nil, fmt.Errorf("suggestion %d has no name", i)
		}
		if !models.IsValidCategory(outfit.Category) {
			return nil, fmt.Errorf("suggestion %d has unknown category %q", i, outfit.Category)
		}
		if len(outfit.ItemsUsed) == 0 {
			return nil, fmt.Errorf("suggestion %d uses no items", i)
		}
		for j, ref := range outfit.ItemsUsed {
			if ref.Type == "" || ref.Color == "" {
				return nil, fmt.Errorf("suggestion %d item %d is missing type or color", i, j)
			}
		}
	}

	return payload.Outfits, nil
}
