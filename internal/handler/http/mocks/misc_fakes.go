package mocks

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// FakeCommentRepository is an in-memory ICommentRepository for tests.
type FakeCommentRepository struct {
	Comments []entity.Comment

	ShouldFail bool
}

var _ contract.ICommentRepository = (*FakeCommentRepository)(nil)

func NewFakeCommentRepository() *FakeCommentRepository {
	return &FakeCommentRepository{}
}

func (f *FakeCommentRepository) Insert(ctx context.Context, comment *entity.Comment) (string, error) {
	if f.ShouldFail {
		return "", errors.New("comment insert failed")
	}
	comment.ID = primitive.NewObjectID()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.Comments = append(f.Comments, *comment)
	return comment.ID.Hex(), nil
}

func (f *FakeCommentRepository) ListByLesson(ctx context.Context, lessonID string, skip, limit int64) ([]entity.Comment, error) {
	if f.ShouldFail {
		return nil, errors.New("comment list failed")
	}
	var matched []entity.Comment
	for _, c := range f.Comments {
		if c.LessonID.Hex() == lessonID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if skip >= int64(len(matched)) {
		return []entity.Comment{}, nil
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *FakeCommentRepository) CountByLesson(ctx context.Context, lessonID string) (int64, error) {
	if f.ShouldFail {
		return 0, errors.New("comment count failed")
	}
	var total int64
	for _, c := range f.Comments {
		if c.LessonID.Hex() == lessonID {
			total++
		}
	}
	return total, nil
}

// FakeReportRepository is an in-memory IReportRepository for tests.
type FakeReportRepository struct {
	Reports []*entity.LessonReport

	ShouldFail bool
}

var _ contract.IReportRepository = (*FakeReportRepository)(nil)

func NewFakeReportRepository() *FakeReportRepository {
	return &FakeReportRepository{}
}

func (f *FakeReportRepository) Insert(ctx context.Context, report *entity.LessonReport) (string, error) {
	if f.ShouldFail {
		return "", errors.New("report insert failed")
	}
	report.ID = primitive.NewObjectID()
	f.Reports = append(f.Reports, report)
	return report.ID.Hex(), nil
}

func (f *FakeReportRepository) ListAll(ctx context.Context) ([]entity.LessonReport, error) {
	if f.ShouldFail {
		return nil, errors.New("report list failed")
	}
	out := make([]entity.LessonReport, 0, len(f.Reports))
	for _, r := range f.Reports {
		out = append(out, *r)
	}
	return out, nil
}

func (f *FakeReportRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	if f.ShouldFail {
		return 0, errors.New("report update failed")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, contract.ErrInvalidID
	}
	for _, r := range f.Reports {
		if r.ID.Hex() == id {
			r.Status = status
			return 1, nil
		}
	}
	return 0, contract.ErrNotFound
}

// FakePaymentRepository is an in-memory IPaymentRepository for tests.
type FakePaymentRepository struct {
	Records map[string]*entity.PaymentRecord // keyed by transaction id

	ShouldFail bool
}

var _ contract.IPaymentRepository = (*FakePaymentRepository)(nil)

func NewFakePaymentRepository() *FakePaymentRepository {
	return &FakePaymentRepository{Records: map[string]*entity.PaymentRecord{}}
}

func (f *FakePaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.PaymentRecord, error) {
	if f.ShouldFail {
		return nil, errors.New("payment lookup failed")
	}
	record, ok := f.Records[transactionID]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return record, nil
}

func (f *FakePaymentRepository) Insert(ctx context.Context, record *entity.PaymentRecord) error {
	if f.ShouldFail {
		return errors.New("payment insert failed")
	}
	if _, ok := f.Records[record.TransactionID]; ok {
		return contract.ErrDuplicate
	}
	record.ID = primitive.NewObjectID()
	f.Records[record.TransactionID] = record
	return nil
}

// FakeTokenVerifier maps raw bearer tokens to verified emails.
type FakeTokenVerifier struct {
	Emails map[string]string // token -> email
}

var _ contract.ITokenVerifier = (*FakeTokenVerifier)(nil)

func NewFakeTokenVerifier() *FakeTokenVerifier {
	return &FakeTokenVerifier{Emails: map[string]string{}}
}

func (f *FakeTokenVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	email, ok := f.Emails[idToken]
	if !ok {
		return "", errors.New("token verification failed")
	}
	return email, nil
}

// FakeCheckoutProvider serves canned checkout sessions.
type FakeCheckoutProvider struct {
	Sessions map[string]*contract.CheckoutSession // keyed by session id

	CreatedURL       string
	ShouldFailCreate bool
}

var _ contract.ICheckoutProvider = (*FakeCheckoutProvider)(nil)

func NewFakeCheckoutProvider() *FakeCheckoutProvider {
	return &FakeCheckoutProvider{
		Sessions:   map[string]*contract.CheckoutSession{},
		CreatedURL: "https://checkout.example.com/session",
	}
}

func (f *FakeCheckoutProvider) CreateSession(ctx context.Context, params contract.CreateCheckoutParams) (*contract.CheckoutSession, error) {
	if f.ShouldFailCreate {
		return nil, errors.New("session create failed")
	}
	return &contract.CheckoutSession{ID: "cs_test", URL: f.CreatedURL}, nil
}

func (f *FakeCheckoutProvider) RetrieveSession(ctx context.Context, sessionID string) (*contract.CheckoutSession, error) {
	session, ok := f.Sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session")
	}
	return session, nil
}
