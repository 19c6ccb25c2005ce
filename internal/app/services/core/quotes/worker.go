package quotes

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// announceLockTTL outlives one calendar day so each date key is announced once
// across instances and restarts.
const announceLockTTL = 25 * time.Hour

// Worker warms the quote memo at day rollover and announces each new quote of the day
// on the journal events exchange.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	quotes    contracts.QuoteUsecase
	locker    contracts.LockerService
	publisher contracts.EventPublisher
	now       func() time.Time

	mu            sync.Mutex
	lastAnnounced string

	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, quoteUsecase contracts.QuoteUsecase, lockerSvc contracts.LockerService, publisher contracts.EventPublisher) *Worker {
	return &Worker{
		log:       log,
		cfg:       cfg,
		quotes:    quoteUsecase,
		locker:    lockerSvc,
		publisher: publisher,
		now:       time.Now,
	}
}

// Start schedules the worker and runs it once immediately.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	location := w.cfg.App.Location
	if location == nil {
		location = time.UTC
	}

	c := cron.New(cron.WithLocation(location))
	spec := w.cfg.Quote.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("quotes.worker: failed to schedule with provided cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New(cron.WithLocation(location))
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.runOnce(w.runCtx)
}

// Stop waits for a running job to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	quote, changed := w.quotes.Refresh(w.now())
	if changed {
		w.log.Info("quotes.worker: quote of the day rotated",
			zap.String(constvars.LoggingDateKeyKey, quote.DateKey),
			zap.Int(constvars.LoggingQuoteIndexKey, quote.Index),
		)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if quote.DateKey == w.lastAnnounced {
		return
	}

	lockKey := constvars.RedisKeyQuoteAnnounced + quote.DateKey
	acquired, lockValue, err := w.locker.TryLock(ctx, lockKey, announceLockTTL)
	if err != nil {
		w.log.Warn("quotes.worker: announce lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("quotes.worker: quote already announced by another instance",
			zap.String(constvars.LoggingDateKeyKey, quote.DateKey),
		)
		w.lastAnnounced = quote.DateKey
		return
	}

	index := quote.Index
	event := &models.JournalEvent{
		Type:       constvars.EventRoutingQuoteRotated,
		EntryDate:  quote.Date,
		DateKey:    quote.DateKey,
		QuoteIndex: &index,
		OccurredAt: w.now().UTC(),
	}
	if err := w.publisher.Publish(ctx, constvars.EventRoutingQuoteRotated, event); err != nil {
		w.log.Warn("quotes.worker: failed to publish quote rotation; releasing lock for retry", zap.Error(err))
		if unlockErr := w.locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			w.log.Warn("quotes.worker: failed to release announce lock", zap.Error(unlockErr))
		}
		return
	}

	w.lastAnnounced = quote.DateKey
}
