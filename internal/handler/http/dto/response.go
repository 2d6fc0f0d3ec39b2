package dto

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse mirrors the dashboard's `{success}` toggle responses.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// InsertedResponse is returned after an insert.
type InsertedResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

// RoleResponse is the role projection of a user lookup.
type RoleResponse struct {
	Role string `json:"role"`
}

// PremiumResponse is the premium projection of a user lookup.
type PremiumResponse struct {
	IsPremium bool `json:"isPremium"`
}

// LikeToggleResponse reports the outcome of a like toggle.
type LikeToggleResponse struct {
	Message       string `json:"message"`
	NewLikesCount int    `json:"newLikesCount"`
}

// CheckoutURLResponse carries the provider's redirect URL.
type CheckoutURLResponse struct {
	URL string `json:"url"`
}
