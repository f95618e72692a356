package models

import "time"

// Auth providers.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is an account able to book activities and publish its own.
type User struct {
	ID              string    `json:"id" bson:"id"`
	Email           string    `json:"email" bson:"email"`
	Nickname        string    `json:"nickname" bson:"nickname"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty" bson:"profile_image_url,omitempty"`
	PasswordHash    string    `json:"-" bson:"password_hash,omitempty"`
	Provider        string    `json:"-" bson:"provider"`
	TokenHash       string    `json:"-" bson:"token_hash,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}

// UserSignupRequest is the payload for email/password registration.
type UserSignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserUpdateRequest carries a partial profile update.
type UserUpdateRequest struct {
	Nickname        *string `json:"nickname"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Password        *string `json:"password"`
}
