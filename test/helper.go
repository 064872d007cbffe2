package test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gigbook/backend/internal/auth"
	"github.com/gigbook/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JWTSecret signs all tokens in tests.
const JWTSecret = "test-secret"

// DecodeError decodes the error message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var r struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(s, &r); err != nil {
		assert.FailNow(t, "Could not decode error response", "Unable to parse response body %q: %v", s, err)
	}

	return r.Error
}

// Token returns an Authorization header for the user.
func Token(t *testing.T, userID uuid.UUID) map[string]string {
	token, err := auth.NewVerifier([]byte(JWTSecret)).Issue(userID, time.Hour)
	require.Nil(t, err)

	return map[string]string{"Authorization": "Bearer " + token}
}

// Admin creates an administrator in the database and returns an
// Authorization header for them.
func Admin(t *testing.T) map[string]string {
	role := models.UserRole{UserID: uuid.New(), Role: models.RoleAdmin}
	require.Nil(t, models.DB.Create(&role).Error)

	return Token(t, role.UserID)
}
