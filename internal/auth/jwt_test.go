package auth_test

import (
	"testing"
	"time"

	"teamboard/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	// Arrange
	userID := uuid.New()

	// Act
	token, err := auth.GenerateToken(userID, testSecret)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedID, err := auth.ParseToken(token, testSecret)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	// Arrange
	token, err := auth.GenerateToken(uuid.New(), testSecret)
	assert.NoError(t, err)

	// Act
	parsedID, err := auth.ParseToken(token, "another-secret")

	// Assert
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestParseToken_Garbage(t *testing.T) {
	// Act
	parsedID, err := auth.ParseToken("not-a-token", testSecret)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestParseToken_Expired(t *testing.T) {
	// Arrange - token that expired an hour ago
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	// Act
	parsedID, err := auth.ParseToken(tokenString, testSecret)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	// Arrange - unsigned token must never be accepted
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	// Act
	parsedID, err := auth.ParseToken(tokenString, testSecret)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestParseToken_InvalidUserID(t *testing.T) {
	// Arrange
	claims := jwt.MapClaims{
		"user_id": "not-a-valid-uuid",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	// Act
	parsedID, err := auth.ParseToken(tokenString, testSecret)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}
