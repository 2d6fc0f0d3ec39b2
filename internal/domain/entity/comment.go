package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is an append-only remark on a lesson. There is no update or
// delete path; display order is newest-first.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LessonID  primitive.ObjectID `bson:"lessonId" json:"lessonId"`
	Comment   string             `bson:"comment" json:"comment"`
	UserEmail string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName  string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserPhoto string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
