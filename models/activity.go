package models

import "time"

// Activity is one bookable experience published by a host.
// Schedules are embedded; they are small and always read together with
// the activity.
type Activity struct {
	ID             string     `json:"id" bson:"id"`
	UserID         string     `json:"userId" bson:"user_id"`
	Title          string     `json:"title" bson:"title"`
	Category       string     `json:"category" bson:"category"`
	Description    string     `json:"description" bson:"description"`
	Price          int        `json:"price" bson:"price"` // per head, integer currency unit
	Address        string     `json:"address" bson:"address"`
	BannerImageURL string     `json:"bannerImageUrl" bson:"banner_image_url"`
	SubImageURLs   []string   `json:"subImageUrls" bson:"sub_image_urls"`
	Schedules      []Schedule `json:"schedules" bson:"schedules"`
	Rating         float64    `json:"rating" bson:"rating"`
	ReviewCount    int        `json:"reviewCount" bson:"review_count"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updated_at"`
}

// ActivityCreateRequest is the payload for publishing a new activity.
type ActivityCreateRequest struct {
	Title          string     `json:"title" binding:"required"`
	Category       string     `json:"category" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Price          int        `json:"price" binding:"required"`
	Address        string     `json:"address" binding:"required"`
	BannerImageURL string     `json:"bannerImageUrl" binding:"required"`
	SubImageURLs   []string   `json:"subImageUrls"`
	Schedules      []Schedule `json:"schedules" binding:"required"`
}

// ActivityUpdateRequest carries a partial update of an activity.
// Schedules are edited by explicit add/remove lists rather than wholesale
// replacement, so existing reservations keep their schedule IDs.
type ActivityUpdateRequest struct {
	Title                *string    `json:"title"`
	Category             *string    `json:"category"`
	Description          *string    `json:"description"`
	Price                *int       `json:"price"`
	Address              *string    `json:"address"`
	BannerImageURL       *string    `json:"bannerImageUrl"`
	SubImageURLsToAdd    []string   `json:"subImageUrlsToAdd"`
	SubImageURLsToRemove []string   `json:"subImageUrlsToRemove"`
	SchedulesToAdd       []Schedule `json:"schedulesToAdd"`
	ScheduleIDsToRemove  []string   `json:"scheduleIdsToRemove"`
}

// ActivityQuery captures list filtering and pagination options.
type ActivityQuery struct {
	Category string
	Keyword  string
	Sort     string // "latest" | "price_asc" | "price_desc"
	Page     int
	Size     int
}

// ActivitySummary is the list-view projection of an activity.
type ActivitySummary struct {
	ID             string    `json:"id" bson:"id"`
	UserID         string    `json:"userId" bson:"user_id"`
	Title          string    `json:"title" bson:"title"`
	Category       string    `json:"category" bson:"category"`
	Price          int       `json:"price" bson:"price"`
	Address        string    `json:"address" bson:"address"`
	BannerImageURL string    `json:"bannerImageUrl" bson:"banner_image_url"`
	Rating         float64   `json:"rating" bson:"rating"`
	ReviewCount    int       `json:"reviewCount" bson:"review_count"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
