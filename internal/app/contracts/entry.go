package contracts

import (
	"context"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"time"
)

type EntryUsecase interface {
	SaveEntry(ctx context.Context, request *requests.SaveEntry) (*responses.Entry, error)
	FindEntriesByDate(ctx context.Context, request *requests.FindEntriesByDate) ([]responses.Entry, error)
	FindEntriesByRange(ctx context.Context, request *requests.FindEntriesByRange) ([]responses.Entry, error)
	DeleteEntry(ctx context.Context, request *requests.DeleteEntry) error
	GetCalendar(ctx context.Context, request *requests.GetCalendar) (*responses.Calendar, error)
	ExportEntries(ctx context.Context, request *requests.ExportEntries) ([]byte, error)
	CurrentStreak(ctx context.Context, userID string) (int, error)
	MonthTotals(ctx context.Context, userID string, year int, month time.Month) (map[string]int, error)
}

type EntryRepository interface {
	UpsertEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	FindByDate(ctx context.Context, userID, entryDate string) ([]models.Entry, error)
	FindByRange(ctx context.Context, userID, from, to string) ([]models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryDate, category string) (deleted bool, err error)
	FindEntryDates(ctx context.Context, userID, until string) ([]string, error)
	EnsureIndexes(ctx context.Context) error
}
