package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository/mocks"
	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail("jo@quotelane.co.uk").
		Return(&domain.User{
			ID:           7,
			Name:         "Jo",
			Email:        "jo@quotelane.co.uk",
			PasswordHash: hashPassword(t, "hunter22"),
			Active:       true,
			RoleID:       2,
		}, nil)

	service := NewService(mockRepo, authConfig())

	token, err := service.LoginUser(" Jo@QuoteLane.co.uk ", "hunter22")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.True(t, claims.UserActive)
}

func TestLoginUser_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, authConfig())

	t.Run("unknown email", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("nobody@quotelane.co.uk").Return(nil, nil)

		_, err := service.LoginUser("nobody@quotelane.co.uk", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("jo@quotelane.co.uk").Return(&domain.User{
			PasswordHash: hashPassword(t, "hunter22"),
			Active:       true,
		}, nil)

		_, err := service.LoginUser("jo@quotelane.co.uk", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled user", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("jo@quotelane.co.uk").Return(&domain.User{
			PasswordHash: hashPassword(t, "hunter22"),
			Active:       false,
		}, nil)

		_, err := service.LoginUser("jo@quotelane.co.uk", "hunter22")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestValidateToken_RejectsForgedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, authConfig())

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUser_RejectsDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail("jo@quotelane.co.uk").
		Return(&domain.User{ID: 7}, nil)

	service := NewService(mockRepo, authConfig())

	_, err := service.CreateUser(&domain.User{
		Name:         "Jo",
		Lastname:     "Birch",
		Email:        "Jo@QuoteLane.co.uk",
		PasswordHash: "hunter22",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_MissingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, authConfig())

	_, err := service.CreateUser(&domain.User{Email: "jo@quotelane.co.uk"})

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
