package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// IdentityVerifier verifies a third-party identity token and returns the
// verified email address to use as the local username.
type IdentityVerifier interface {
	Verify(idToken string) (email string, err error)
}

// GoogleVerifier validates Google ID tokens against Google's published
// signing keys and the configured OAuth client id.
type GoogleVerifier struct {
	jwks     *keyfunc.JWKS
	clientID string
}

func NewGoogleVerifier(clientID string) (*GoogleVerifier, error) {
	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch google jwks: %w", err)
	}
	return &GoogleVerifier{jwks: jwks, clientID: clientID}, nil
}

func (v *GoogleVerifier) Verify(idToken string) (string, error) {
	token, err := jwt.Parse(idToken, v.jwks.Keyfunc)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if !claims.VerifyAudience(v.clientID, true) {
		return "", ErrInvalidToken
	}
	iss, _ := claims["iss"].(string)
	if iss != "accounts.google.com" && iss != "https://accounts.google.com" {
		return "", ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("token has no email claim")
	}
	return email, nil
}
