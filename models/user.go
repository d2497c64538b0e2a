package models

import "time"

// User represents a registered user
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // Password is not returned in JSON
	Provider  string    `bson:"provider,omitempty" json:"provider,omitempty"`
	Status    string    `bson:"status" json:"status"` // pending, verified, active
	OTP       string    `bson:"otp,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
