package contract

import "context"

// ITokenVerifier verifies a bearer ID token with the external identity
// provider and extracts the caller's verified email. Token issuance is
// entirely the provider's concern.
type ITokenVerifier interface {
	Verify(ctx context.Context, idToken string) (email string, err error)
}
