package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// FavoriteRecord is the per-user aggregate of favorited lesson ids.
// Lesson ids are kept as hex strings, matching what clients submit.
// One record exists per email; it is created lazily on the first
// favorite action and never explicitly deleted.
type FavoriteRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Favorites      []string           `bson:"favorites" json:"favorites"`
	FavoritesCount int                `bson:"favoritesCount" json:"favoritesCount"`
}

// Contains reports membership of a lesson id in the record.
func (r *FavoriteRecord) Contains(lessonID string) bool {
	for _, id := range r.Favorites {
		if id == lessonID {
			return true
		}
	}
	return false
}

// FavoriteLessonView is one resolved favorite, shaped for the dashboard
// favorites listing.
type FavoriteLessonView struct {
	RecordID      primitive.ObjectID `json:"_id"`
	LessonID      primitive.ObjectID `json:"lessonId"`
	LessonTitle   string             `json:"lessonTitle"`
	Category      string             `json:"category"`
	EmotionalTone string             `json:"emotionalTone"`
	CreatorName   string             `json:"creatorName"`
}
