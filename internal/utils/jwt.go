package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/unifin/finapi/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID as its canonical UUID string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role:            the user's role, consumed by the RBAC middleware
//   - typ:             "access" or "refresh"
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, userID uuid.UUID, role models.Role, tokenType string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || userID == uuid.Nil {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if tokenType != models.TokenTypeAccess && tokenType != models.TokenTypeRefresh {
		return models.Token{}, fmt.Errorf("unknown token type %q", tokenType)
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:      role,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Role:         role,
		TokenType:    tokenType,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to a UUID
//
// Returns the decoded token model on success, or an error if validation
// fails, claims are missing, or the subject cannot be parsed.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.SubjectUUID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("unknown role claim %q", claims.Role)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Role:         claims.Role,
		TokenType:    claims.TokenType,
	}, nil
}
