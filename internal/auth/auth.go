// Package auth verifies bearer tokens and restricts routes to administrators.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingCredential = errors.New("the request must contain a bearer token in the Authorization header")
	ErrInvalidCredential = errors.New("the bearer token is invalid or expired")
	ErrNotAdministrator  = errors.New("this endpoint is restricted to administrators")
	ErrRoleLookup        = errors.New("the role of the user could not be determined")
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "auth-user-id"

// Verifier signs and verifies HS256 tokens whose subject is a user ID.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret []byte) Verifier {
	return Verifier{secret: secret}
}

// Issue signs a token for the user that expires after ttl.
func (v Verifier) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Subject parses an Authorization header value and returns the user ID
// the token was issued for.
func (v Verifier) Subject(header string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return uuid.Nil, ErrMissingCredential
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user ID", ErrInvalidCredential)
	}

	return id, nil
}

// RoleLookup reports whether a user has been granted a role.
type RoleLookup interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

type httpError struct {
	Error string `json:"error" example:"this endpoint is restricted to administrators"`
}

// RequireAdmin aborts every request that does not carry a valid token of a
// user with the admin role.
func RequireAdmin(verifier Verifier, lookup RoleLookup, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := verifier.Subject(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: err.Error()})
			return
		}

		ok, err := lookup.HasRole(c.Request.Context(), userID, role)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Str("user", userID.String()).Err(err).Msg("role lookup")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httpError{Error: ErrRoleLookup.Error()})
			return
		}

		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, httpError{Error: ErrNotAdministrator.Error()})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
