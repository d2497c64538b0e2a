package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/stylgpt/closet/models"
)

func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"type":    {Type: genai.TypeString},
			"color":   {Type: genai.TypeString},
			"texture": {Type: genai.TypeString},
			"brand":   {Type: genai.TypeString},
			"fit":     {Type: genai.TypeString},
			"season": {
				Type: genai.TypeString,
				Enum: []string{models.SeasonSummer, models.SeasonWinter, models.SeasonSpring, models.SeasonFall, models.SeasonAll},
			},
		},
		Required: []string{"type", "color", "texture", "fit", "season"},
	}
}

const analysisPrompt = `You are a fashion expert. Analyze the clothing item in the photo and describe it.
Identify the item's type (e.g. shirt, pants, dress), its dominant color, its texture or material,
its brand if visible, its fit (e.g. slim, regular, oversized) and the season it is suited for.
Use 'all' for items wearable year round. If the brand is not identifiable, use "Unknown".`

// AnalyzeItem classifies a clothing photo supplied as a data URI and
// returns its structured attributes.
func (c *Client) AnalyzeItem(ctx context.Context, photoDataURI string) (*ItemAttributes, error) {
	mimeType, imageData, err := DecodeDataURI(photoDataURI)
	if err != nil {
		return nil, err
	}

	format := strings.TrimPrefix(mimeType, "image/")
	model := c.genai.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = analysisSchema()

	resp, err := model.GenerateContent(ctx,
		genai.Text(analysisPrompt),
		genai.ImageData(format, imageData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze photo: %w", err)
	}

	data, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return ParseAttributes(data)
}

// ParseAttributes decodes and validates an analysis response.
func ParseAttributes(data []byte) (*ItemAttributes, error) {
	var attrs ItemAttributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("malformed analysis response: %w", err)
	}
	if attrs.Type == "" || attrs.Color == "" {
		return nil, fmt.Errorf("analysis response is missing type or color")
	}
	if !models.IsValidSeason(attrs.Season) {
		return nil, fmt.Errorf("analysis response has unknown season %q", attrs.Season)
	}
	if attrs.Brand == "" {
		attrs.Brand = "Unknown"
	}
	return &attrs, nil
}

// DecodeDataURI splits a data URI into its MIME type and decoded bytes.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, encoded, found := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "image/png"
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	return mimeType, data, nil
}
