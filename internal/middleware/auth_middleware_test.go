package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teamboard/internal/auth"
	"teamboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const jwtSecret = "test-secret-key"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))
	protected.GET("/resource", func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Access granted",
			"user_id": userID,
		})
	})

	return r
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	router := setupRouter()
	userID := uuid.New()
	token, err := auth.GenerateToken(userID, jwtSecret)
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Access granted")
	assert.Contains(t, resp.Body.String(), userID.String())
}

func TestJWTAuthMiddleware_NoAuthHeader(t *testing.T) {
	// Arrange
	router := setupRouter()
	req, _ := http.NewRequest("GET", "/protected/resource", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestJWTAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	// Arrange
	router := setupRouter()
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header format must be Bearer {token}")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	// Arrange
	router := setupRouter()
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestJWTAuthMiddleware_TokenSignedWithOtherSecret(t *testing.T) {
	// Arrange
	router := setupRouter()
	token, err := auth.GenerateToken(uuid.New(), "another-secret")
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}
