package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamboard/internal/handler"
	"teamboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func setupTest() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockUserRepository)
	userHandler := handler.NewUserHandler(mockRepo, "test-secret")

	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	return r, mockRepo
}

func postJSON(router *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupTest()
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	// Act
	resp := postJSON(router, "/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Test User", response["name"])
	assert.Equal(t, "test@example.com", response["email"])
	assert.NotEmpty(t, response["id"])

	mockRepo.AssertExpectations(t)
}

func TestRegister_LowercasesEmail(t *testing.T) {
	// Arrange
	router, mockRepo := setupTest()
	mockRepo.On("FindByEmail", mock.Anything, "mixed@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	// Act
	resp := postJSON(router, "/register", map[string]string{
		"name":     "Test User",
		"email":    "Mixed@Example.Com",
		"password": "password123",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	// Arrange
	router, mockRepo := setupTest()
	existing := &model.User{
		ID:             uuid.New(),
		Email:          "existing@example.com",
		HashedPassword: "hashed_password",
		Name:           "Existing User",
	}
	mockRepo.On("FindByEmail", mock.Anything, "existing@example.com").Return(existing, nil)

	// Act
	resp := postJSON(router, "/register", map[string]string{
		"name":     "Test User",
		"email":    "existing@example.com",
		"password": "password123",
	})

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "User already exists")
	mockRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupTest()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	testUser := &model.User{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: string(hashedPassword),
		Name:           "Test User",
	}
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(testUser, nil)

	// Act
	resp := postJSON(router, "/login", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response["token"])
	assert.Equal(t, testUser.ID.String(), response["id"])
	assert.Equal(t, testUser.Email, response["email"])

	mockRepo.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	router, mockRepo := setupTest()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)
	testUser := &model.User{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: string(hashedPassword),
		Name:           "Test User",
	}
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(testUser, nil)

	// Act
	resp := postJSON(router, "/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrong_password",
	})

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupTest()
	mockRepo.On("FindByEmail", mock.Anything, "nonexistent@example.com").Return(nil, nil)

	// Act
	resp := postJSON(router, "/login", map[string]string{
		"email":    "nonexistent@example.com",
		"password": "password123",
	})

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid credentials")
	mockRepo.AssertExpectations(t)
}
