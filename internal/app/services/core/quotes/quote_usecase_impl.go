package quotes

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dailyselect"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"daily-journal-service/internal/pkg/exceptions"
	"daily-journal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type quoteUsecase struct {
	Memo           *dailyselect.Memo[models.Quote]
	Candidates     []models.Quote
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewQuoteUsecase(candidates []models.Quote, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.QuoteUsecase, error) {
	memo, err := dailyselect.NewMemo(candidates)
	if err != nil {
		return nil, exceptions.ErrQuoteCandidatesEmpty(err)
	}

	owned := make([]models.Quote, len(candidates))
	copy(owned, candidates)

	return &quoteUsecase{
		Memo:           memo,
		Candidates:     owned,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}, nil
}

func (uc *quoteUsecase) location() *time.Location {
	if uc.InternalConfig.App.Location != nil {
		return uc.InternalConfig.App.Location
	}
	return time.UTC
}

func (uc *quoteUsecase) GetTodayQuote(ctx context.Context) (*responses.Quote, error) {
	requestID := utils.GetRequestID(ctx)

	quote, changed := uc.Refresh(uc.now())
	if changed {
		uc.Log.Info("quoteUsecase.GetTodayQuote selected new quote",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKeyKey, quote.DateKey),
			zap.Int(constvars.LoggingQuoteIndexKey, quote.Index),
		)
	}
	return quote, nil
}

func (uc *quoteUsecase) GetQuoteByDate(ctx context.Context, request *requests.GetQuoteByDate) (*responses.Quote, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("quoteUsecase.GetQuoteByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryDateKey, request.Date),
	)

	date, err := utils.ParseDate(request.Date, uc.location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	dateKey := dailyselect.DateKey(date)
	quote, index, err := dailyselect.SelectIndexed(dateKey, uc.Candidates)
	if err != nil {
		return nil, exceptions.ErrQuoteCandidatesEmpty(err)
	}

	return toQuoteResponse(date, dateKey, index, quote), nil
}

// Refresh returns the quote for now's calendar date in the service timezone and
// reports whether it differs from the previously memoized day.
func (uc *quoteUsecase) Refresh(now time.Time) (*responses.Quote, bool) {
	local := now.In(uc.location())
	selection, changed := uc.Memo.Get(local)
	return toQuoteResponse(local, selection.DateKey, selection.Index, selection.Item), changed
}

func toQuoteResponse(date time.Time, dateKey string, index int, quote models.Quote) *responses.Quote {
	return &responses.Quote{
		Date:    utils.FormatDate(date),
		DateKey: dateKey,
		Index:   index,
		Text:    quote.Text,
		Author:  quote.Author,
	}
}
