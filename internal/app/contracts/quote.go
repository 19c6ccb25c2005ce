package contracts

import (
	"context"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"time"
)

type QuoteUsecase interface {
	GetTodayQuote(ctx context.Context) (*responses.Quote, error)
	GetQuoteByDate(ctx context.Context, request *requests.GetQuoteByDate) (*responses.Quote, error)
	Refresh(now time.Time) (quote *responses.Quote, changed bool)
}
