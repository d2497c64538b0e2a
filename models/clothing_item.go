package models

import "time"

// Valid values for ClothingItem.Season.
const (
	SeasonSummer = "summer"
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonFall   = "fall"
	SeasonAll    = "all"
)

var validSeasons = map[string]bool{
	SeasonSummer: true,
	SeasonWinter: true,
	SeasonSpring: true,
	SeasonFall:   true,
	SeasonAll:    true,
}

// IsValidSeason reports whether s is one of the five season tags.
func IsValidSeason(s string) bool {
	return validSeasons[s]
}

// ClothingItem represents a single wardrobe item. A nil UserID marks a
// public catalog item visible to every user; a non-nil UserID restricts
// visibility to that owner.
type ClothingItem struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      *string   `bson:"user_id" json:"userId"`
	PhotoURL    string    `bson:"photo_url" json:"photoUrl"`
	StoragePath string    `bson:"storage_path" json:"storagePath"`
	Type        string    `bson:"type" json:"type"`
	Color       string    `bson:"color" json:"color"` // may be comma-separated shades; first token is canonical
	Texture     string    `bson:"texture" json:"texture"`
	Brand       string    `bson:"brand" json:"brand"`
	Fit         string    `bson:"fit" json:"fit"`
	Season      string    `bson:"season" json:"season"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// OwnedBy reports whether the item belongs to userID. Public items (nil
// owner) belong to nobody.
func (c *ClothingItem) OwnedBy(userID string) bool {
	return c.UserID != nil && *c.UserID == userID
}

// VisibleTo reports whether userID may read this item.
func (c *ClothingItem) VisibleTo(userID string) bool {
	return c.UserID == nil || *c.UserID == userID
}
