package entries

import (
	"bytes"
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"daily-journal-service/internal/pkg/exceptions"
	"daily-journal-service/internal/pkg/utils"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type entryUsecase struct {
	EntryRepository contracts.EntryRepository
	SessionService  contracts.SessionService
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewEntryUsecase(
	entryRepository contracts.EntryRepository,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.EntryUsecase {
	return &entryUsecase{
		EntryRepository: entryRepository,
		SessionService:  sessionService,
		EventPublisher:  eventPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

func (uc *entryUsecase) location() *time.Location {
	if uc.InternalConfig.App.Location != nil {
		return uc.InternalConfig.App.Location
	}
	return time.UTC
}

func (uc *entryUsecase) today() time.Time {
	return utils.StartOfDay(uc.now(), uc.location())
}

func (uc *entryUsecase) SaveEntry(ctx context.Context, request *requests.SaveEntry) (*responses.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.SaveEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryDateKey, request.EntryDate),
		zap.String(constvars.LoggingCategoryKey, request.Category),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	entryDate, err := utils.ParseDate(request.EntryDate, uc.location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if entryDate.After(uc.today()) {
		return nil, exceptions.ErrEntryDateInFuture(nil)
	}

	entry := &models.Entry{
		UserID:    session.UserID,
		EntryDate: request.EntryDate,
		Category:  request.Category,
		Content:   request.Content,
	}
	entry.SetCreatedAtUpdatedAt(uc.now())

	saved, err := uc.EntryRepository.UpsertEntry(ctx, entry)
	if err != nil {
		uc.Log.Error("entryUsecase.SaveEntry error upserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.EventRoutingEntrySaved, session.UserID, saved.EntryDate, saved.Category)

	uc.Log.Info("entryUsecase.SaveEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	response := toEntryResponse(*saved)
	return &response, nil
}

func (uc *entryUsecase) FindEntriesByDate(ctx context.Context, request *requests.FindEntriesByDate) ([]responses.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.FindEntriesByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryDateKey, request.EntryDate),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	entries, err := uc.EntryRepository.FindByDate(ctx, session.UserID, request.EntryDate)
	if err != nil {
		return nil, err
	}
	SortEntries(entries)

	uc.Log.Info("entryUsecase.FindEntriesByDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(entries)),
	)
	return toEntryResponses(entries), nil
}

func (uc *entryUsecase) FindEntriesByRange(ctx context.Context, request *requests.FindEntriesByRange) ([]responses.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.FindEntriesByRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	from, err := utils.ParseDate(request.From, uc.location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	to, err := utils.ParseDate(request.To, uc.location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if to.Before(from) {
		return nil, exceptions.ErrInvalidDateRange(fmt.Errorf("from %s is after to %s", request.From, request.To))
	}
	if utils.DaysBetween(from, to)+1 > constvars.EntryRangeMaxDays {
		return nil, exceptions.ErrInvalidDateRange(fmt.Errorf("range %s..%s spans more than %d days", request.From, request.To, constvars.EntryRangeMaxDays))
	}

	entries, err := uc.EntryRepository.FindByRange(ctx, session.UserID, request.From, request.To)
	if err != nil {
		return nil, err
	}
	SortEntries(entries)

	uc.Log.Info("entryUsecase.FindEntriesByRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(entries)),
	)
	return toEntryResponses(entries), nil
}

func (uc *entryUsecase) DeleteEntry(ctx context.Context, request *requests.DeleteEntry) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.DeleteEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryDateKey, request.EntryDate),
		zap.String(constvars.LoggingCategoryKey, request.Category),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}

	deleted, err := uc.EntryRepository.DeleteEntry(ctx, session.UserID, request.EntryDate, request.Category)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrEntryNotExist(nil)
	}

	uc.publish(ctx, constvars.EventRoutingEntryDeleted, session.UserID, request.EntryDate, request.Category)

	uc.Log.Info("entryUsecase.DeleteEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *entryUsecase) GetCalendar(ctx context.Context, request *requests.GetCalendar) (*responses.Calendar, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	month := time.Month(request.Month)
	first, last := monthBounds(request.Year, month)
	entries, err := uc.EntryRepository.FindByRange(ctx, session.UserID, first, last)
	if err != nil {
		return nil, err
	}

	streak, err := uc.CurrentStreak(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	calendar := &responses.Calendar{
		Year:          request.Year,
		Month:         request.Month,
		Days:          BuildCalendarDays(request.Year, month, utils.FormatDate(uc.today()), entries),
		Totals:        CountByCategory(entries),
		CurrentStreak: streak,
	}

	uc.Log.Info("entryUsecase.GetCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return calendar, nil
}

func (uc *entryUsecase) ExportEntries(ctx context.Context, request *requests.ExportEntries) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.ExportEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	from := fmt.Sprintf("%04d-01-01", request.Year)
	to := fmt.Sprintf("%04d-12-31", request.Year)
	entries, err := uc.EntryRepository.FindByRange(ctx, session.UserID, from, to)
	if err != nil {
		return nil, err
	}
	SortEntries(entries)

	events := make([]utils.ICSEvent, 0, len(entries))
	for _, entry := range entries {
		date, err := utils.ParseDate(entry.EntryDate, time.UTC)
		if err != nil {
			uc.Log.Warn("entryUsecase.ExportEntries skipping entry with malformed date",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEntryDateKey, entry.EntryDate),
			)
			continue
		}
		events = append(events, utils.ICSEvent{
			UID:         utils.EntryICSUID(entry.EntryDate, entry.Category, session.UserID),
			Date:        date,
			Summary:     categoryTitle(entry.Category),
			Description: entry.Content,
		})
	}

	var buf bytes.Buffer
	calendarName := fmt.Sprintf("%s journal %d", session.DisplayName, request.Year)
	if err := utils.WriteICS(&buf, strings.TrimSpace(calendarName), uc.now(), events); err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	uc.Log.Info("entryUsecase.ExportEntries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(events)),
	)
	return buf.Bytes(), nil
}

func (uc *entryUsecase) CurrentStreak(ctx context.Context, userID string) (int, error) {
	today := uc.today()
	dates, err := uc.EntryRepository.FindEntryDates(ctx, userID, utils.FormatDate(today))
	if err != nil {
		return 0, err
	}
	return CalculateStreak(dates, today), nil
}

func (uc *entryUsecase) MonthTotals(ctx context.Context, userID string, year int, month time.Month) (map[string]int, error) {
	first, last := monthBounds(year, month)
	entries, err := uc.EntryRepository.FindByRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}
	return CountByCategory(entries), nil
}

// publish does not fail the caller; the entry is already persisted.
func (uc *entryUsecase) publish(ctx context.Context, routingKey, userID, entryDate, category string) {
	event := &models.JournalEvent{
		Type:       routingKey,
		UserID:     userID,
		EntryDate:  entryDate,
		Category:   category,
		RequestID:  utils.GetRequestID(ctx),
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.EventPublisher.Publish(ctx, routingKey, event); err != nil {
		uc.Log.Warn("entryUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}

func categoryTitle(category string) string {
	if category == "" {
		return category
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

func toEntryResponse(entry models.Entry) responses.Entry {
	return responses.Entry{
		EntryID:   entry.ID,
		EntryDate: entry.EntryDate,
		Category:  entry.Category,
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func toEntryResponses(entries []models.Entry) []responses.Entry {
	result := make([]responses.Entry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toEntryResponse(entry))
	}
	return result
}
