package contracts

import (
	"context"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"time"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, request *requests.GetProfile) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error)
	AvatarURL(ctx context.Context, user *models.User) string
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByShareToken(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	SetShareToken(ctx context.Context, userID, token string, createdAt time.Time) error
	UnsetShareToken(ctx context.Context, userID string) error
	EnsureIndexes(ctx context.Context) error
}
