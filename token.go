package chatauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer  = "accounts.chat.app"
	tokenSubject = "client@chat.app"
	tokenTTL     = 24 * time.Hour
)

// Claims are the registered claims plus the user id the token asserts.
type Claims struct {
	jwt.RegisteredClaims
	ChatID string `json:"chatId"`
}

// TokenService issues and verifies HMAC-SHA256 signed identity tokens.
// It holds the signing secret for the life of the process and has no
// other state, so it is safe for concurrent use.
type TokenService struct {
	secret []byte
}

// NewTokenService rejects an empty secret: tokens signed with a known
// default would be forgeable.
func NewTokenService(secret []byte) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("token signing secret is empty")
	}
	return &TokenService{secret: secret}, nil
}

// Issue signs a token carrying the subject id, valid for 24 hours.
func (t *TokenService) Issue(subject ID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		ChatID: string(subject),
	})
	return token.SignedString(t.secret)
}

// Verify checks signature, issuer, subject and expiry together and
// returns the id the token was issued for. Any failed check yields
// ErrInvalidToken with no further detail.
func (t *TokenService) Verify(tokenString string) (ID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(tokenSubject),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.ChatID == "" {
		return "", ErrInvalidToken
	}
	return ID(claims.ChatID), nil
}
