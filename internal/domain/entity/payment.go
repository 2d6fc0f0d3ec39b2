package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is written exactly once per successful checkout session.
// TransactionID is the payment provider's payment-intent identifier and
// is the sole deduplication key; records are never mutated or deleted.
type PaymentRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        int64              `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	UserID        string             `bson:"userId" json:"userId"`
	UserName      string             `bson:"userName" json:"userName"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
