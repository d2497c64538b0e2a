package ai

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatePayload(count int) []byte {
	outfits := make([]map[string]interface{}, 0, count)
	names := []string{"City Stroll", "Evening Edge", "Layered Up", "Extra"}
	for i := 0; i < count; i++ {
		outfits = append(outfits, map[string]interface{}{
			"name":        names[i%len(names)],
			"description": "A look",
			"category":    "Casual",
			"itemsUsed": []map[string]string{
				{"type": "shirt", "color": "blue"},
			},
		})
	}
	data, _ := json.Marshal(map[string]interface{}{"outfits": outfits})
	return data
}

func TestParseCandidates(t *testing.T) {
	candidates, err := ParseCandidates(candidatePayload(3))
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "City Stroll", candidates[0].Name)
	assert.Equal(t, "Casual", candidates[0].Category)
	assert.Equal(t, []ItemRef{{Type: "shirt", Color: "blue"}}, candidates[0].ItemsUsed)
}

func TestParseCandidatesWrongCount(t *testing.T) {
	_, err := ParseCandidates(candidatePayload(2))
	assert.Error(t, err)

	_, err = ParseCandidates(candidatePayload(4))
	assert.Error(t, err)
}

func TestParseCandidatesMalformed(t *testing.T) {
	_, err := ParseCandidates([]byte("not json"))
	assert.Error(t, err)
}

func TestParseCandidatesValidation(t *testing.T) {
	base := func() []map[string]interface{} {
		var payload struct {
			Outfits []map[string]interface{} `json:"outfits"`
		}
		require.NoError(t, json.Unmarshal(candidatePayload(3), &payload))
		return payload.Outfits
	}

	cases := []struct {
		name   string
		mutate func(outfits []map[string]interface{})
	}{
		{"empty name", func(o []map[string]interface{}) { o[1]["name"] = "  " }},
		{"unknown category", func(o []map[string]interface{}) { o[1]["category"] = "Streetwear" }},
		{"no items", func(o []map[string]interface{}) { o[1]["itemsUsed"] = []map[string]string{} }},
		{"item missing color", func(o []map[string]interface{}) {
			o[1]["itemsUsed"] = []map[string]string{{"type": "shirt"}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outfits := base()
			tc.mutate(outfits)
			data, err := json.Marshal(map[string]interface{}{"outfits": outfits})
			require.NoError(t, err)

			// One bad candidate fails the whole response.
			_, err = ParseCandidates(data)
			assert.Error(t, err)
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	req := SuggestionRequest{
		Items: []InventoryItem{
			{Type: "shirt", Color: "blue", Texture: "cotton", Brand: "Unknown", Fit: "regular", Season: "all"},
		},
		StylePreferences:   "minimalist",
		Requirements:       "office friendly",
		UnusedItemPriority: 0.9,
		ExistingOutfits: []OutfitSummary{
			{Name: "Old Favourite", ItemsUsed: []ItemRef{{Type: "jeans", Color: "black"}}},
		},
	}

	prompt := buildSuggestionPrompt(req)
	assert.Contains(t, prompt, "shirt (blue, cotton, Unknown, regular, all)")
	assert.Contains(t, prompt, "minimalist")
	assert.Contains(t, prompt, "office friendly")
	assert.Contains(t, prompt, "0.9")
	assert.Contains(t, prompt, "Old Favourite: jeans (black)")
	assert.True(t, strings.Contains(prompt, "Casual"))
}
