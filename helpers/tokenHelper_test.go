package helpers

import (
	"testing"

	"go-resto-manager/models"

	"gopkg.in/go-playground/assert.v1"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	user := &models.User{ID: 7, Username: "kouame", Role: models.RoleCashier}
	token, refreshToken, err := GenerateAllTokens(user)
	assert.Equal(t, err, nil)
	assert.NotEqual(t, token, "")
	assert.NotEqual(t, refreshToken, "")

	claims, err := ValidateToken(token)
	assert.Equal(t, err, nil)
	assert.Equal(t, claims.Username, "kouame")
	assert.Equal(t, claims.UserID, uint(7))
	assert.Equal(t, claims.Role, models.RoleCashier)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	Init("test-secret")

	_, err := ValidateToken("not-a-token")
	assert.NotEqual(t, err, nil)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	Init("first-secret")
	user := &models.User{ID: 1, Username: "adjoua", Role: models.RoleManager}
	token, _, err := GenerateAllTokens(user)
	assert.Equal(t, err, nil)

	Init("second-secret")
	_, err = ValidateToken(token)
	assert.NotEqual(t, err, nil)
}
