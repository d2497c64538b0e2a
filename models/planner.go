package models

// PlannerEntry schedules outfits for one user on one calendar date.
// There is at most one entry per (user, date); an entry whose outfit set
// becomes empty is deleted rather than stored empty.
type PlannerEntry struct {
	ID        string   `bson:"_id" json:"id"`
	UserID    string   `bson:"user_id" json:"userId"`
	Date      string   `bson:"date" json:"date"` // YYYY-MM-DD
	OutfitIDs []string `bson:"outfit_ids" json:"outfitIds"`
}
