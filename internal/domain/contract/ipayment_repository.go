package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// IPaymentRepository is the persistence contract for payment records.
// Records are insert-only; the transaction id is the idempotency key and
// is backed by a unique index.
type IPaymentRepository interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.PaymentRecord, error)
	Insert(ctx context.Context, record *entity.PaymentRecord) error
}
