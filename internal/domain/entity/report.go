package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses. Admins may set any value; these are the ones the
// dashboard knows about.
const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// LessonReport records a user flagging a lesson. The reported lesson's
// title, creator and category are snapshotted at report time so the
// report stays meaningful if the lesson is later edited or deleted.
type LessonReport struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LessonID           string             `bson:"lessonId" json:"lessonId"`
	LessonTitle        string             `bson:"lessonTitle" json:"lessonTitle"`
	LessonCreatorEmail string             `bson:"lessonCreatorEmail" json:"lessonCreatorEmail"`
	LessonCategory     string             `bson:"lessonCategory" json:"lessonCategory"`
	ReporterUserID     string             `bson:"reporterUserId" json:"reporterUserId"`
	Reason             string             `bson:"reason" json:"reason"`
	Status             string             `bson:"status" json:"status"`
	Timestamp          time.Time          `bson:"timestamp" json:"timestamp"`
}
