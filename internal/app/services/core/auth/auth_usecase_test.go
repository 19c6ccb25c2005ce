package auth

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts/mocks"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/exceptions"
	"daily-journal-service/internal/pkg/utils"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthUsecase(userRepo *mocks.UserRepository, sessionSvc *mocks.SessionService) *authUsecase {
	cfg := &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 2},
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 2},
	}
	uc := NewAuthUsecase(userRepo, sessionSvc, cfg, zap.NewNop()).(*authUsecase)
	uc.now = func() time.Time { return time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC) }
	return uc
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected custom error, got %v", err)
	return customErr.StatusCode
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates User With Hashed Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByEmail", ctx, "rina@example.com").Return(nil, nil)
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "rina@example.com" && u.Password != "Secr3t!pass" && utils.CheckPasswordHash("Secr3t!pass", u.Password)
		})).Return("65a4f0c2e1b2c3d4e5f60718", nil)

		uc := newTestAuthUsecase(userRepo, new(mocks.SessionService))
		response, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Email:       "rina@example.com",
			Password:    "Secr3t!pass",
			DisplayName: "Rina",
		})

		require.NoError(t, err)
		assert.Equal(t, "65a4f0c2e1b2c3d4e5f60718", response.UserID)
		assert.Equal(t, "Rina", response.DisplayName)
		userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByEmail", ctx, "rina@example.com").Return(&models.User{ID: "u1"}, nil)

		uc := newTestAuthUsecase(userRepo, new(mocks.SessionService))
		_, err := uc.RegisterUser(ctx, &requests.RegisterUser{Email: "rina@example.com", Password: "Secr3t!pass"})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("Secr3t!pass")
	require.NoError(t, err)
	user := &models.User{ID: "u1", Email: "rina@example.com", DisplayName: "Rina", Password: hash}

	t.Run("Valid Credentials", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionSvc := new(mocks.SessionService)
		userRepo.On("FindByEmail", ctx, "rina@example.com").Return(user, nil)

		var stored *models.Session
		sessionSvc.On("CreateSession", ctx, mock.AnythingOfType("*models.Session"), 2*time.Hour).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Session) }).
			Return(nil)

		uc := newTestAuthUsecase(userRepo, sessionSvc)
		response, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "rina@example.com", Password: "Secr3t!pass"})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "u1", stored.UserID)
		assert.Equal(t, time.Date(2024, time.January, 15, 11, 0, 0, 0, time.UTC), stored.ExpiresAt)

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, stored.SessionID, sessionID, "token should carry the stored session id")
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionSvc := new(mocks.SessionService)
		userRepo.On("FindByEmail", ctx, "rina@example.com").Return(user, nil)

		uc := newTestAuthUsecase(userRepo, sessionSvc)
		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "rina@example.com", Password: "wrong-pass"})

		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
		sessionSvc.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil)

		uc := newTestAuthUsecase(userRepo, new(mocks.SessionService))
		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "nobody@example.com", Password: "Secr3t!pass"})

		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	sessionSvc := new(mocks.SessionService)
	sessionSvc.On("ParseSessionData", ctx, "raw").Return(&models.Session{SessionID: "s1", UserID: "u1"}, nil)
	sessionSvc.On("DeleteSession", ctx, "s1").Return(nil)

	uc := newTestAuthUsecase(new(mocks.UserRepository), sessionSvc)
	require.NoError(t, uc.LogoutUser(ctx, &requests.LogoutUser{SessionData: "raw"}))
	sessionSvc.AssertExpectations(t)
}
