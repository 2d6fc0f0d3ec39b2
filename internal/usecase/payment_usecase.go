package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// ConfirmResult reports the terminal state of a payment confirmation.
type ConfirmResult struct {
	AlreadyRecorded bool
	Paid            bool
	TransactionID   string
	Payment         *entity.PaymentRecord
}

// PaymentUsecase drives the hosted-checkout flow: create a session, and
// on the success callback record the payment exactly once and flip the
// purchasing user to premium.
type PaymentUsecase struct {
	provider    contract.ICheckoutProvider
	paymentRepo contract.IPaymentRepository
	userRepo    contract.IUserRepository
	logger      contract.IAppLogger
}

// NewPaymentUsecase creates and returns a new PaymentUsecase instance.
func NewPaymentUsecase(provider contract.ICheckoutProvider, paymentRepo contract.IPaymentRepository, userRepo contract.IUserRepository, logger contract.IAppLogger) *PaymentUsecase {
	return &PaymentUsecase{
		provider:    provider,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateSession asks the provider for a hosted checkout session and
// returns its redirect URL.
func (u *PaymentUsecase) CreateSession(ctx context.Context, params contract.CreateCheckoutParams) (string, error) {
	session, err := u.provider.CreateSession(ctx, params)
	if err != nil {
		return "", err
	}
	return session.URL, nil
}

// Confirm retrieves the session's terminal state from the provider and,
// if it settled, records the payment and grants premium. Repeat confirms
// of the same session are idempotent: the provider's payment-intent id
// is the deduplication key, backed by a unique index on insert.
func (u *PaymentUsecase) Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	session, err := u.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	transactionID := session.TransactionID

	if _, err := u.paymentRepo.GetByTransactionID(ctx, transactionID); err == nil {
		return &ConfirmResult{AlreadyRecorded: true, TransactionID: transactionID}, nil
	} else if !errors.Is(err, contract.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing payment: %w", err)
	}

	if session.PaymentStatus != contract.PaymentStatusPaid {
		return &ConfirmResult{Paid: false, TransactionID: transactionID}, nil
	}

	userID := session.Metadata["userId"]
	if err := u.userRepo.SetPremium(ctx, userID, true); err != nil {
		return nil, fmt.Errorf("failed to grant premium to user %s: %w", userID, err)
	}

	record := &entity.PaymentRecord{
		TransactionID: transactionID,
		Amount:        session.AmountTotal,
		Currency:      session.Currency,
		UserEmail:     session.CustomerEmail,
		UserID:        userID,
		UserName:      session.Metadata["userName"],
		PaymentStatus: session.PaymentStatus,
		PaidAt:        time.Now(),
	}
	if err := u.paymentRepo.Insert(ctx, record); err != nil {
		// A simultaneous duplicate confirm lost the insert race; premium
		// was already granted by the winner, so report it as recorded.
		if errors.Is(err, contract.ErrDuplicate) {
			return &ConfirmResult{AlreadyRecorded: true, TransactionID: transactionID}, nil
		}
		return nil, err
	}

	u.logger.Infof("payment recorded: transaction %s for user %s", transactionID, userID)
	return &ConfirmResult{Paid: true, TransactionID: transactionID, Payment: record}, nil
}
