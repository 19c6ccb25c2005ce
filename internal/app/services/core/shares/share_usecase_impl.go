package shares

import (
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
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const encouragementQuotaWindow = 24 * time.Hour

type shareUsecase struct {
	UserRepository          contracts.UserRepository
	EncouragementRepository contracts.EncouragementRepository
	RedisRepository         contracts.RedisRepository
	SessionService          contracts.SessionService
	UserUsecase             contracts.UserUsecase
	EntryUsecase            contracts.EntryUsecase
	QuoteUsecase            contracts.QuoteUsecase
	ResourceLimiter         contracts.ResourceLimiter
	EventPublisher          contracts.EventPublisher
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
	now                     func() time.Time
}

func NewShareUsecase(
	userRepository contracts.UserRepository,
	encouragementRepository contracts.EncouragementRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	userUsecase contracts.UserUsecase,
	entryUsecase contracts.EntryUsecase,
	quoteUsecase contracts.QuoteUsecase,
	resourceLimiter contracts.ResourceLimiter,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ShareUsecase {
	return &shareUsecase{
		UserRepository:          userRepository,
		EncouragementRepository: encouragementRepository,
		RedisRepository:         redisRepository,
		SessionService:          sessionService,
		UserUsecase:             userUsecase,
		EntryUsecase:            entryUsecase,
		QuoteUsecase:            quoteUsecase,
		ResourceLimiter:         resourceLimiter,
		EventPublisher:          eventPublisher,
		InternalConfig:          internalConfig,
		Log:                     logger,
		now:                     time.Now,
	}
}

func shareTokenKey(token string) string {
	return constvars.RedisKeyShareTokenPrefix + token
}

func (uc *shareUsecase) location() *time.Location {
	if uc.InternalConfig.App.Location != nil {
		return uc.InternalConfig.App.Location
	}
	return time.UTC
}

func (uc *shareUsecase) CreateShareLink(ctx context.Context, request *requests.CreateShareLink) (*responses.ShareLink, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("shareUsecase.CreateShareLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.sessionUser(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	token := utils.GenerateShareToken()
	err = uc.UserRepository.SetShareToken(ctx, user.ID, token, uc.now())
	if err != nil {
		uc.Log.Error("shareUsecase.CreateShareLink error storing share token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user.ShareToken != "" {
		uc.evictToken(ctx, user.ShareToken)
	}

	uc.Log.Info("shareUsecase.CreateShareLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.Bool("rotated", user.ShareToken != ""),
	)
	return &responses.ShareLink{
		Token: token,
		URL:   fmt.Sprintf(constvars.AppShareLinkUrlFormat, uc.InternalConfig.App.PublicBaseUrl, token),
	}, nil
}

func (uc *shareUsecase) RevokeShareLink(ctx context.Context, request *requests.RevokeShareLink) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("shareUsecase.RevokeShareLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.sessionUser(ctx, request.SessionData)
	if err != nil {
		return err
	}
	if !user.HasShareLink() {
		return nil
	}

	err = uc.UserRepository.UnsetShareToken(ctx, user.ID)
	if err != nil {
		return err
	}
	uc.evictToken(ctx, user.ShareToken)

	uc.Log.Info("shareUsecase.RevokeShareLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *shareUsecase) GetPublicPage(ctx context.Context, request *requests.GetPublicPage) (*responses.PublicPage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("shareUsecase.GetPublicPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.resolveToken(ctx, request.Token)
	if err != nil {
		return nil, err
	}

	page := &responses.PublicPage{DisplayName: user.DisplayName}
	today := uc.now().In(uc.location())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		streak, err := uc.EntryUsecase.CurrentStreak(gctx, user.ID)
		page.CurrentStreak = streak
		return err
	})
	g.Go(func() error {
		totals, err := uc.EntryUsecase.MonthTotals(gctx, user.ID, today.Year(), today.Month())
		page.MonthTotals = totals
		return err
	})
	g.Go(func() error {
		items, err := uc.EncouragementRepository.FindRecentByUserID(gctx, user.ID, uc.recentSize())
		page.RecentEncouragements = toEncouragementResponses(items)
		return err
	})
	g.Go(func() error {
		page.AvatarURL = uc.UserUsecase.AvatarURL(gctx, user)
		return nil
	})
	g.Go(func() error {
		quote, err := uc.QuoteUsecase.GetTodayQuote(gctx)
		page.Quote = quote
		return err
	})
	if err := g.Wait(); err != nil {
		uc.Log.Error("shareUsecase.GetPublicPage error building page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("shareUsecase.GetPublicPage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return page, nil
}

func (uc *shareUsecase) SendEncouragement(ctx context.Context, request *requests.SendEncouragement) (*responses.Encouragement, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("shareUsecase.SendEncouragement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.resolveToken(ctx, request.Token)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	allowed, retryAfter, err := uc.ResourceLimiter.Allow(
		ctx,
		constvars.ResourceLimiterGroupEncouragement,
		user.ID,
		encouragementQuotaWindow,
		uc.InternalConfig.Share.EncouragementDailyQuota,
		now.In(uc.location()),
	)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.Log.Warn("shareUsecase.SendEncouragement daily quota reached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Duration("retry_after", retryAfter),
		)
		return nil, exceptions.ErrTooManyRequests(nil)
	}

	encouragement := &models.Encouragement{
		UserID:    user.ID,
		Name:      request.Name,
		Message:   request.Message,
		CreatedAt: now.UTC(),
	}
	encouragement.ID, err = uc.EncouragementRepository.CreateEncouragement(ctx, encouragement)
	if err != nil {
		return nil, err
	}

	event := &models.JournalEvent{
		Type:       constvars.EventRoutingEncouragementAdded,
		UserID:     user.ID,
		RequestID:  requestID,
		OccurredAt: now.UTC(),
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.EventRoutingEncouragementAdded, event); err != nil {
		uc.Log.Warn("shareUsecase.SendEncouragement error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, "encouragement_received", requestID,
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	response := toEncouragementResponse(*encouragement)
	return &response, nil
}

func (uc *shareUsecase) ListEncouragements(ctx context.Context, request *requests.ListEncouragements) ([]responses.Encouragement, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("shareUsecase.ListEncouragements called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := uc.EncouragementRepository.FindByUserID(ctx, session.UserID, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	uc.Log.Info("shareUsecase.ListEncouragements succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(items)),
	)
	return toEncouragementResponses(items), total, nil
}

func (uc *shareUsecase) sessionUser(ctx context.Context, sessionData string) (*models.User, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

// resolveToken maps a share token to its owner, consulting the Redis cache first.
// A cached mapping is trusted only while the owner still holds the token.
func (uc *shareUsecase) resolveToken(ctx context.Context, token string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)

	cached, err := uc.RedisRepository.Get(ctx, shareTokenKey(token))
	if err != nil {
		uc.Log.Warn("shareUsecase.resolveToken error reading token cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if cached != "" {
		var userID string
		if err := json.Unmarshal([]byte(cached), &userID); err == nil {
			user, err := uc.UserRepository.FindByID(ctx, userID)
			if err != nil {
				return nil, err
			}
			if user != nil && user.ShareToken == token {
				return user, nil
			}
		}
		uc.evictToken(ctx, token)
	}

	user, err := uc.UserRepository.FindByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrShareTokenNotExist(nil)
	}

	ttl := time.Duration(uc.InternalConfig.Share.TokenCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, shareTokenKey(token), user.ID, ttl); err != nil {
		uc.Log.Warn("shareUsecase.resolveToken error caching token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return user, nil
}

func (uc *shareUsecase) evictToken(ctx context.Context, token string) {
	if err := uc.RedisRepository.Delete(ctx, shareTokenKey(token)); err != nil {
		uc.Log.Warn("shareUsecase.evictToken error deleting cached token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

// recentSize is capped at constvars.PublicRecentEncouragements.
func (uc *shareUsecase) recentSize() int {
	size := uc.InternalConfig.Share.PublicRecentEncouragementSize
	if size <= 0 || size > constvars.PublicRecentEncouragements {
		return constvars.PublicRecentEncouragements
	}
	return size
}

func toEncouragementResponse(item models.Encouragement) responses.Encouragement {
	return responses.Encouragement{
		EncouragementID: item.ID,
		Name:            item.Name,
		Message:         item.Message,
		CreatedAt:       item.CreatedAt,
	}
}

func toEncouragementResponses(items []models.Encouragement) []responses.Encouragement {
	result := make([]responses.Encouragement, 0, len(items))
	for _, item := range items {
		result = append(result, toEncouragementResponse(item))
	}
	return result
}
