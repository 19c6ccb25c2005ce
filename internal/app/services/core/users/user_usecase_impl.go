package users

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
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, request *requests.GetProfile) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return uc.buildProfile(ctx, user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if len(request.AvatarData) > 0 {
		objectName, err := uc.uploadAvatar(ctx, user.ID, request)
		if err != nil {
			uc.Log.Error("userUsecase.UpdateProfile error uploading avatar",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		user.AvatarObjectName = objectName
	}

	user.DisplayName = request.DisplayName
	user.SetUpdatedAt(uc.now())

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return uc.buildProfile(ctx, user), nil
}

// AvatarURL returns a presigned URL for the user's avatar, or "" when the user has none
// or the URL cannot be signed.
func (uc *userUsecase) AvatarURL(ctx context.Context, user *models.User) string {
	if user == nil || user.AvatarObjectName == "" {
		return ""
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours) * time.Hour
	avatarURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, user.AvatarObjectName, expiry)
	if err != nil {
		uc.Log.Warn("userUsecase.AvatarURL error presigning avatar",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return ""
	}
	return avatarURL
}

func (uc *userUsecase) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func (uc *userUsecase) buildProfile(ctx context.Context, user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   uc.AvatarURL(ctx, user),
		HasShare:    user.HasShareLink(),
	}
}

func (uc *userUsecase) uploadAvatar(ctx context.Context, userID string, request *requests.UpdateProfile) (string, error) {
	fileName := utils.GenerateFileName(constvars.ImageAvatarPrefix, userID, request.AvatarExtension)

	return uc.MinioStorage.UploadBase64Image(
		ctx,
		request.AvatarData,
		uc.InternalConfig.Minio.BucketName,
		fileName,
		request.AvatarExtension,
	)
}
