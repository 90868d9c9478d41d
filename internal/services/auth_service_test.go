package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"kasuwa/internal/apperrors"
	"kasuwa/internal/models"
	"kasuwa/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "ada@example.com").Return(nil, nil).Once()
	// Capture the password as it is persisted: the service zeroes the
	// same *models.User after Create, so inspecting mockRepo.Calls
	// afterwards would see the cleared field, not what Create received.
	var createdPassword string
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		createdPassword = args.Get(0).(*models.User).Password
	}).Return(nil).Once()

	user, err := authService.Register(&models.User{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		Password:  "password123",
	})

	assert.NoError(t, err)
	// The returned user never carries the password.
	assert.Empty(t, user.Password)
	mockRepo.AssertExpectations(t)

	// The persisted user got a bcrypt hash, not the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdPassword), []byte("password123")))
}

func TestAuthService_Register_EmailConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "ada@example.com").Return(&models.User{ID: "user-1"}, nil).Once()

	user, err := authService.Register(&models.User{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		Password:  "password123",
	})

	assert.Nil(t, user)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	secret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, secret)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "ada@example.com",
		Password: string(hashed),
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	token, err := authService.Login("ada@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["user_id"])

	// Expiry is one hour out.
	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(time.Hour/time.Second), exp-iat)
	mockRepo.AssertExpectations(t)
}

// Wrong password and unknown email fail with the identical message so
// accounts cannot be enumerated.
func TestAuthService_Login_UniformFailureMessage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Email: "ada@example.com", Password: string(hashed)}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, errWrongPassword := authService.Login("ada@example.com", "wrongpassword")

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, nil).Once()
	_, errUnknownEmail := authService.Login("nobody@example.com", "password123")

	assert.Error(t, errWrongPassword)
	assert.Error(t, errUnknownEmail)
	assert.Equal(t, "Invalid credentials", errWrongPassword.Error())
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	secret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(secret))

	userID, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestAuthService_ValidateToken_Malformed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	_, err := authService.ValidateToken("not.a.token")
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forged, _ := token.SignedString([]byte("another_secret"))

	_, err := authService.ValidateToken(forged)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	mockRepo := new(MockUserRepository)
	secret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expired, _ := token.SignedString([]byte(secret))

	_, err := authService.ValidateToken(expired)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
	assert.Contains(t, appErr.Message, "expired")
}
