package contracts

import (
	"context"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, request *requests.LogoutUser) error
}
