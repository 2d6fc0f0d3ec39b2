package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
	handler "github.com/skn143/lifelessons/internal/handler/http"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
	"github.com/skn143/lifelessons/internal/infrastructure/logger"
	"github.com/skn143/lifelessons/internal/usecase"
)

func setupPaymentRouter(provider *mocks.FakeCheckoutProvider, paymentRepo *mocks.FakePaymentRepository, userRepo *mocks.FakeUserRepository) *gin.Engine {
	h := handler.NewPaymentHandler(usecase.NewPaymentUsecase(provider, paymentRepo, userRepo, logger.NewStdLogger()))
	r := gin.New()
	r.POST("/create-checkout-session", h.CreateCheckoutSession)
	r.GET("/payment-success", h.PaymentSuccess)
	return r
}

func TestCreateCheckoutSession(t *testing.T) {
	r := setupPaymentRouter(mocks.NewFakeCheckoutProvider(), mocks.NewFakePaymentRepository(), mocks.NewFakeUserRepository())

	body, _ := json.Marshal(handler.CreateCheckoutRequest{
		Cost:   500,
		Email:  "buyer@example.com",
		UserID: primitive.NewObjectID().Hex(),
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/create-checkout-session", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://checkout.example.com/session"}`, w.Body.String())
}

func TestPaymentSuccess_GrantsPremiumOnce(t *testing.T) {
	provider := mocks.NewFakeCheckoutProvider()
	paymentRepo := mocks.NewFakePaymentRepository()
	userRepo := mocks.NewFakeUserRepository()

	buyer := &entity.User{ID: primitive.NewObjectID(), Email: "buyer@example.com"}
	userRepo.Users[buyer.Email] = buyer
	provider.Sessions["cs_paid"] = &contract.CheckoutSession{
		ID:            "cs_paid",
		TransactionID: "pi_123",
		PaymentStatus: contract.PaymentStatusPaid,
		AmountTotal:   50000,
		Currency:      "bdt",
		CustomerEmail: buyer.Email,
		Metadata:      map[string]string{"userId": buyer.ID.Hex(), "userName": "Buyer"},
	}
	r := setupPaymentRouter(provider, paymentRepo, userRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/payment-success?session_id=cs_paid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "pi_123")
	assert.True(t, buyer.IsPremium)
	assert.Len(t, paymentRepo.Records, 1)

	// Replaying the callback must not write a second record.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/payment-success?session_id=cs_paid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	assert.Len(t, paymentRepo.Records, 1)
}

func TestPaymentSuccess_UnpaidSession(t *testing.T) {
	provider := mocks.NewFakeCheckoutProvider()
	paymentRepo := mocks.NewFakePaymentRepository()
	provider.Sessions["cs_open"] = &contract.CheckoutSession{
		ID:            "cs_open",
		TransactionID: "pi_456",
		PaymentStatus: "unpaid",
	}
	r := setupPaymentRouter(provider, paymentRepo, mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/payment-success?session_id=cs_open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
	assert.Empty(t, paymentRepo.Records)
}

func TestPaymentSuccess_RequiresSessionID(t *testing.T) {
	r := setupPaymentRouter(mocks.NewFakeCheckoutProvider(), mocks.NewFakePaymentRepository(), mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/payment-success", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
