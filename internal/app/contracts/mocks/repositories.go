// Package mocks holds testify mocks for the contracts interfaces.
package mocks

import (
	"context"
	"daily-journal-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByShareToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	return m.Called(ctx, userModel).Error(0)
}

func (m *UserRepository) SetShareToken(ctx context.Context, userID, token string, createdAt time.Time) error {
	return m.Called(ctx, userID, token, createdAt).Error(0)
}

func (m *UserRepository) UnsetShareToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *UserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) UpsertEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	args := m.Called(ctx, entry)
	saved, _ := args.Get(0).(*models.Entry)
	return saved, args.Error(1)
}

func (m *EntryRepository) FindByDate(ctx context.Context, userID, entryDate string) ([]models.Entry, error) {
	args := m.Called(ctx, userID, entryDate)
	entries, _ := args.Get(0).([]models.Entry)
	return entries, args.Error(1)
}

func (m *EntryRepository) FindByRange(ctx context.Context, userID, from, to string) ([]models.Entry, error) {
	args := m.Called(ctx, userID, from, to)
	entries, _ := args.Get(0).([]models.Entry)
	return entries, args.Error(1)
}

func (m *EntryRepository) DeleteEntry(ctx context.Context, userID, entryDate, category string) (bool, error) {
	args := m.Called(ctx, userID, entryDate, category)
	return args.Bool(0), args.Error(1)
}

func (m *EntryRepository) FindEntryDates(ctx context.Context, userID, until string) ([]string, error) {
	args := m.Called(ctx, userID, until)
	dates, _ := args.Get(0).([]string)
	return dates, args.Error(1)
}

func (m *EntryRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type EncouragementRepository struct {
	mock.Mock
}

func (m *EncouragementRepository) CreateEncouragement(ctx context.Context, encouragement *models.Encouragement) (string, error) {
	args := m.Called(ctx, encouragement)
	return args.String(0), args.Error(1)
}

func (m *EncouragementRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]models.Encouragement, error) {
	args := m.Called(ctx, userID, limit)
	items, _ := args.Get(0).([]models.Encouragement)
	return items, args.Error(1)
}

func (m *EncouragementRepository) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Encouragement, int, error) {
	args := m.Called(ctx, userID, page, pageSize)
	items, _ := args.Get(0).([]models.Encouragement)
	return items, args.Int(1), args.Error(2)
}

func (m *EncouragementRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
