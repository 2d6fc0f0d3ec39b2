package firebaseauth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// ErrNoEmailClaim is returned when a verified token carries no email.
var ErrNoEmailClaim = errors.New("token has no email claim")

// Verifier checks Firebase ID tokens. It implements contract.ITokenVerifier.
type Verifier struct {
	client *auth.Client
}

// NewVerifier initializes the Firebase app from either a credentials file
// path (GOOGLE_APPLICATION_CREDENTIALS) or an inline base64 service
// account (FIREBASE_SERVICE_ACCOUNT_JSON_BASE64) and returns a token
// verifier bound to its auth client.
func NewVerifier(ctx context.Context) (*Verifier, error) {
	var opts []option.ClientOption
	if credsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credsPath))
	} else if credsB64 := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"); credsB64 != "" {
		jsonKey, err := base64.StdEncoding.DecodeString(credsB64)
		if err != nil {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is not a valid base64 string")
		}
		opts = append(opts, option.WithCredentialsJSON(jsonKey))
	} else {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 must be set")
	}

	conf := &firebase.Config{ProjectID: os.Getenv("FIREBASE_PROJECT_ID")}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Verifier{client: client}, nil
}

// Verify validates the ID token's signature and expiry and returns the
// verified email claim.
func (v *Verifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify id token: %w", err)
	}
	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		return "", ErrNoEmailClaim
	}
	return email, nil
}
