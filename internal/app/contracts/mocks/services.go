package mocks

import (
	"context"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type SessionService struct {
	mock.Mock
}

func (m *SessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *SessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadBase64Image(ctx context.Context, encodedImage []byte, bucketName, fileName, fileExtension string) (string, error) {
	args := m.Called(ctx, encodedImage, bucketName, fileName, fileExtension)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, routingKey string, event *models.JournalEvent) error {
	return m.Called(ctx, routingKey, event).Error(0)
}

func (m *EventPublisher) Close() error {
	return m.Called().Error(0)
}

type ResourceLimiter struct {
	mock.Mock
}

func (m *ResourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int, now time.Time) (bool, time.Duration, error) {
	args := m.Called(ctx, group, resource, window, maxQuota, now)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.RegisterUser)
	return response, args.Error(1)
}

func (m *AuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.LoginUser)
	return response, args.Error(1)
}

func (m *AuthUsecase) LogoutUser(ctx context.Context, request *requests.LogoutUser) error {
	return m.Called(ctx, request).Error(0)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) GetProfile(ctx context.Context, request *requests.GetProfile) (*responses.UserProfile, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.UserProfile)
	return response, args.Error(1)
}

func (m *UserUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.UserProfile)
	return response, args.Error(1)
}

func (m *UserUsecase) AvatarURL(ctx context.Context, user *models.User) string {
	return m.Called(ctx, user).String(0)
}

type EntryUsecase struct {
	mock.Mock
}

func (m *EntryUsecase) SaveEntry(ctx context.Context, request *requests.SaveEntry) (*responses.Entry, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Entry)
	return response, args.Error(1)
}

func (m *EntryUsecase) FindEntriesByDate(ctx context.Context, request *requests.FindEntriesByDate) ([]responses.Entry, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]responses.Entry)
	return response, args.Error(1)
}

func (m *EntryUsecase) FindEntriesByRange(ctx context.Context, request *requests.FindEntriesByRange) ([]responses.Entry, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]responses.Entry)
	return response, args.Error(1)
}

func (m *EntryUsecase) DeleteEntry(ctx context.Context, request *requests.DeleteEntry) error {
	return m.Called(ctx, request).Error(0)
}

func (m *EntryUsecase) GetCalendar(ctx context.Context, request *requests.GetCalendar) (*responses.Calendar, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Calendar)
	return response, args.Error(1)
}

func (m *EntryUsecase) ExportEntries(ctx context.Context, request *requests.ExportEntries) ([]byte, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]byte)
	return response, args.Error(1)
}

func (m *EntryUsecase) CurrentStreak(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *EntryUsecase) MonthTotals(ctx context.Context, userID string, year int, month time.Month) (map[string]int, error) {
	args := m.Called(ctx, userID, year, month)
	totals, _ := args.Get(0).(map[string]int)
	return totals, args.Error(1)
}

type QuoteUsecase struct {
	mock.Mock
}

func (m *QuoteUsecase) GetTodayQuote(ctx context.Context) (*responses.Quote, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).(*responses.Quote)
	return response, args.Error(1)
}

func (m *QuoteUsecase) GetQuoteByDate(ctx context.Context, request *requests.GetQuoteByDate) (*responses.Quote, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Quote)
	return response, args.Error(1)
}

func (m *QuoteUsecase) Refresh(now time.Time) (*responses.Quote, bool) {
	args := m.Called(now)
	response, _ := args.Get(0).(*responses.Quote)
	return response, args.Bool(1)
}

type ShareUsecase struct {
	mock.Mock
}

func (m *ShareUsecase) CreateShareLink(ctx context.Context, request *requests.CreateShareLink) (*responses.ShareLink, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.ShareLink)
	return response, args.Error(1)
}

func (m *ShareUsecase) RevokeShareLink(ctx context.Context, request *requests.RevokeShareLink) error {
	return m.Called(ctx, request).Error(0)
}

func (m *ShareUsecase) GetPublicPage(ctx context.Context, request *requests.GetPublicPage) (*responses.PublicPage, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.PublicPage)
	return response, args.Error(1)
}

func (m *ShareUsecase) SendEncouragement(ctx context.Context, request *requests.SendEncouragement) (*responses.Encouragement, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Encouragement)
	return response, args.Error(1)
}

func (m *ShareUsecase) ListEncouragements(ctx context.Context, request *requests.ListEncouragements) ([]responses.Encouragement, int, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]responses.Encouragement)
	return response, args.Int(1), args.Error(2)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}
