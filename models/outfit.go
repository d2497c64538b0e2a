package models

import "time"

// OutfitCategories is the fixed set of categories an outfit may carry.
// The suggestion model is constrained to the same list.
var OutfitCategories = []string{
	"Casual",
	"Business Casual",
	"Activewear",
	"Loungewear",
	"Night Out",
	"Smart Casual",
	"Vacation",
	"Seasonal",
	"Special Occasion",
	"Formal",
}

// IsValidCategory reports whether c is one of the fixed outfit categories.
func IsValidCategory(c string) bool {
	for _, cat := range OutfitCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// ItemLayout positions a single item inside the outfit editor canvas.
// x/y/width/height are percentages of the canvas; presentation only.
type ItemLayout struct {
	X      float64 `bson:"x" json:"x"`
	Y      float64 `bson:"y" json:"y"`
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
	ZIndex int     `bson:"z_index" json:"zIndex"`
}

// Outfit is a named set of clothing item IDs belonging to one user.
// ItemLayouts is keyed by item ID and is optional.
type Outfit struct {
	ID          string                `bson:"_id" json:"id"`
	UserID      string                `bson:"user_id" json:"userId"`
	Name        string                `bson:"name" json:"name"`
	Description string                `bson:"description" json:"description"`
	Category    string                `bson:"category" json:"category"`
	ItemIDs     []string              `bson:"item_ids" json:"itemIds"`
	ItemLayouts map[string]ItemLayout `bson:"item_layouts,omitempty" json:"itemLayouts,omitempty"`
	CreatedAt   time.Time             `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time             `bson:"updated_at" json:"updatedAt"`
}
