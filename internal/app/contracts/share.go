package contracts

import (
	"context"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
)

type ShareUsecase interface {
	CreateShareLink(ctx context.Context, request *requests.CreateShareLink) (*responses.ShareLink, error)
	RevokeShareLink(ctx context.Context, request *requests.RevokeShareLink) error
	GetPublicPage(ctx context.Context, request *requests.GetPublicPage) (*responses.PublicPage, error)
	SendEncouragement(ctx context.Context, request *requests.SendEncouragement) (*responses.Encouragement, error)
	ListEncouragements(ctx context.Context, request *requests.ListEncouragements) ([]responses.Encouragement, int, error)
}

type EncouragementRepository interface {
	CreateEncouragement(ctx context.Context, encouragement *models.Encouragement) (string, error)
	FindRecentByUserID(ctx context.Context, userID string, limit int) ([]models.Encouragement, error)
	FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Encouragement, int, error)
	EnsureIndexes(ctx context.Context) error
}
