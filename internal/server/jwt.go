package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DraftClaims represents JWT claims binding a token to one draft.
type DraftClaims struct {
	DraftID uuid.UUID `json:"draft_id"`
	jwt.RegisteredClaims
}

// DraftTokenService issues and validates draft access tokens. Drafts are
// anonymous, so the token returned at creation time is the only credential
// for reading the draft back.
type DraftTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewDraftTokenService creates a token service with the given signing
// secret and token lifetime.
func NewDraftTokenService(secret string, ttl time.Duration) *DraftTokenService {
	return &DraftTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken generates a signed token for the given draft ID.
func (s *DraftTokenService) GenerateToken(draftID uuid.UUID) (string, error) {
	now := time.Now()

	claims := &DraftClaims{
		DraftID: draftID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a draft token and returns its claims.
func (s *DraftTokenService) ValidateToken(tokenString string) (*DraftClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &DraftClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}
