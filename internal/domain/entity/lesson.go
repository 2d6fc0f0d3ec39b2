package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Lesson access levels.
const (
	AccessLevelFree    = "free"
	AccessLevelPremium = "premium"
)

// Review states a lesson moves through before it appears in public listings.
const (
	ReviewStatePending  = "pending"
	ReviewStateReviewed = "reviewed"
)

// Lesson is a content item created by a user. Lessons are stored
// schema-light: creators may submit extra fields which are kept verbatim,
// so reads decode only the fields the platform itself maintains.
type Lesson struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CreatorEmail   string             `bson:"creatorEmail,omitempty" json:"creatorEmail,omitempty"`
	CreatorName    string             `bson:"creatorName,omitempty" json:"creatorName,omitempty"`
	Title          string             `bson:"title,omitempty" json:"title,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	EmotionalTone  string             `bson:"emotionalTone,omitempty" json:"emotionalTone,omitempty"`
	Visibility     string             `bson:"visibility,omitempty" json:"visibility,omitempty"`
	AccessLevel    string             `bson:"accessLevel,omitempty" json:"accessLevel,omitempty"`
	IsReviewed     string             `bson:"isReviewed,omitempty" json:"isReviewed,omitempty"`
	IsFeatured     bool               `bson:"isFeatured,omitempty" json:"isFeatured"`
	Likes          []string           `bson:"likes" json:"likes"`
	LikesCount     int                `bson:"likesCount" json:"likesCount"`
	FavoritesCount int                `bson:"favoritesCount" json:"favoritesCount"`
	Views          int                `bson:"views" json:"views"`
	ReportsCount   int                `bson:"reportsCount" json:"reportsCount"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LessonSummary is the projection returned when resolving a user's
// favorite lessons.
type LessonSummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"lessonId"`
	Title         string             `bson:"title" json:"lessonTitle"`
	Category      string             `bson:"category" json:"category"`
	EmotionalTone string             `bson:"emotionalTone" json:"emotionalTone"`
	CreatorName   string             `bson:"creatorName" json:"creatorName"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
