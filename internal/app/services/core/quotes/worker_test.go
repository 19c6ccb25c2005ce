package quotes

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts/mocks"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dto/responses"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type workerTestDeps struct {
	quotes    *mocks.QuoteUsecase
	locker    *mocks.LockerService
	publisher *mocks.EventPublisher
}

func newTestWorker(spec string) (*Worker, workerTestDeps) {
	deps := workerTestDeps{
		quotes:    new(mocks.QuoteUsecase),
		locker:    new(mocks.LockerService),
		publisher: new(mocks.EventPublisher),
	}
	cfg := &config.InternalConfig{
		App:   config.App{Location: time.UTC},
		Quote: config.AppQuote{WorkerCronSpec: spec},
	}
	w := NewWorker(zap.NewNop(), cfg, deps.quotes, deps.locker, deps.publisher)
	w.now = func() time.Time { return time.Date(2024, time.January, 15, 0, 0, 5, 0, time.UTC) }
	return w, deps
}

func todayQuote() *responses.Quote {
	return &responses.Quote{Date: "2024-01-15", DateKey: "2024-0-15", Index: 3, Text: "D"}
}

func TestWorkerAnnouncesOncePerDay(t *testing.T) {
	ctx := context.Background()
	w, deps := newTestWorker("@daily")

	deps.quotes.On("Refresh", mock.Anything).Return(todayQuote(), true).Once()
	deps.quotes.On("Refresh", mock.Anything).Return(todayQuote(), false)
	deps.locker.On("TryLock", ctx, "quote_announced:2024-0-15", announceLockTTL).Return(true, "lock-1", nil).Once()
	deps.publisher.On("Publish", ctx, constvars.EventRoutingQuoteRotated, mock.MatchedBy(func(ev *models.JournalEvent) bool {
		return ev.DateKey == "2024-0-15" && ev.QuoteIndex != nil && *ev.QuoteIndex == 3
	})).Return(nil).Once()

	w.runOnce(ctx)
	w.runOnce(ctx)

	deps.locker.AssertNumberOfCalls(t, "TryLock", 1)
	deps.publisher.AssertExpectations(t)
}

func TestWorkerSkipsWhenAnotherInstanceAnnounced(t *testing.T) {
	ctx := context.Background()
	w, deps := newTestWorker("@daily")

	deps.quotes.On("Refresh", mock.Anything).Return(todayQuote(), true)
	deps.locker.On("TryLock", ctx, "quote_announced:2024-0-15", announceLockTTL).Return(false, "", nil)

	w.runOnce(ctx)

	deps.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkerReleasesLockWhenPublishFails(t *testing.T) {
	ctx := context.Background()
	w, deps := newTestWorker("@daily")

	deps.quotes.On("Refresh", mock.Anything).Return(todayQuote(), true)
	deps.locker.On("TryLock", ctx, "quote_announced:2024-0-15", announceLockTTL).Return(true, "lock-1", nil)
	deps.publisher.On("Publish", ctx, constvars.EventRoutingQuoteRotated, mock.Anything).Return(errors.New("broker down"))
	deps.locker.On("Unlock", ctx, "quote_announced:2024-0-15", "lock-1").Return(nil)

	w.runOnce(ctx)
	w.runOnce(ctx)

	deps.locker.AssertNumberOfCalls(t, "TryLock", 2)
	deps.locker.AssertNumberOfCalls(t, "Unlock", 2)
}

func TestWorkerStartStopDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, deps := newTestWorker("not a cron spec")
	deps.quotes.On("Refresh", mock.Anything).Return(todayQuote(), true)
	deps.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

	w.Start(context.Background())
	w.Stop()

	assert.Len(t, w.cron.Entries(), 1, "invalid spec falls back to a single @daily job")
}
