package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/handler/http/dto"
	"github.com/skn143/lifelessons/internal/infrastructure/metrics"
	"github.com/skn143/lifelessons/internal/usecase"
)

type PaymentHandler struct {
	paymentUsecase *usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreateCheckoutRequest is the checkout initiation payload. Cost is the
// price in major currency units.
type CreateCheckoutRequest struct {
	Cost     int64  `json:"cost" binding:"required"`
	Email    string `json:"email" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName"`
}

// CreateCheckoutSession opens a hosted checkout session and returns the
// redirect URL.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	url, err := h.paymentUsecase.CreateSession(c.Request.Context(), contract.CreateCheckoutParams{
		Cost:     req.Cost,
		Email:    req.Email,
		UserID:   req.UserID,
		UserName: req.UserName,
	})
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckoutURLResponse{URL: url})
}

// PaymentSuccess is the checkout success callback. It settles the
// session exactly once; repeat calls with the same session report the
// existing record.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		ErrorHandler(c, http.StatusBadRequest, "session_id is required")
		return
	}

	result, err := h.paymentUsecase.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to confirm payment")
		return
	}

	switch {
	case result.AlreadyRecorded:
		SuccessHandler(c, http.StatusOK, gin.H{"message": "already exists", "transactionId": result.TransactionID})
	case result.Paid:
		metrics.PaymentsRecorded.Inc()
		SuccessHandler(c, http.StatusOK, gin.H{"success": true, "transactionId": result.TransactionID, "paymentInfo": result.Payment})
	default:
		SuccessHandler(c, http.StatusOK, dto.SuccessResponse{Success: false})
	}
}
