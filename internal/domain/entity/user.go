package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role        UserRole           `bson:"role" json:"role"`
	IsPremium   bool               `bson:"isPremium" json:"isPremium"`
	// Favorites is the legacy inline list, superseded by FavoriteRecord.
	Favorites []string  `bson:"favorites" json:"favorites"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}
