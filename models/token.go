package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type values carried in the "typ" claim. Access tokens authenticate
// API requests; refresh tokens are accepted only by the refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the JWT claim set issued by the authentication service.
// Alongside the registered claims it carries the user's role (so the RBAC
// middleware avoids a user lookup per request) and the token type.
type TokenClaims struct {
	jwt.RegisteredClaims

	Role      Role   `json:"role"`
	TokenType string `json:"typ"`
}

// Token wraps a parsed or freshly issued JWT with convenience accessors used
// by the authentication flow.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Only the compact string form is meaningful outside the server.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the account identifier parsed from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Role is the role claim carried by the token.
	Role Role `json:"-"`

	// TokenType is the "typ" claim: access or refresh.
	TokenType string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the response body of the login and refresh endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// SubjectUUID parses the "sub" claim of c as a UUID.
func (c TokenClaims) SubjectUUID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
