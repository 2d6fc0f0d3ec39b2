package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// PaymentRepository represents the MongoDB implementation of the
// IPaymentRepository interface. Inserts lean on the unique
// transactionId index for idempotency under concurrent confirms.
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates and returns a new PaymentRepository instance.
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payment"),
	}
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.PaymentRecord, error) {
	var record entity.PaymentRecord
	err := r.collection.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}
	return &record, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, record *entity.PaymentRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: transaction %s", contract.ErrDuplicate, record.TransactionID)
		}
		return fmt.Errorf("failed to insert payment record: %w", err)
	}
	return nil
}
