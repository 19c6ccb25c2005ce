package config

import (
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/utils"
	"log"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "daily_journal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	cfg := &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", "8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1"),
			Address:                        utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			PublicBaseUrl:                  utils.GetEnvString("APP_PUBLIC_BASE_URL", "http://localhost:3000"),
			FrontendDomain:                 utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 72),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 72),
		},
		Quote: AppQuote{
			FilePath:       utils.GetEnvString("QUOTE_FILE", ""),
			WorkerCronSpec: utils.GetEnvString("APP_QUOTE_WORKER_CRON_SPEC", "@daily"),
		},
		Share: AppShare{
			TokenCacheTTLInMinutes:        utils.GetEnvInt("APP_SHARE_TOKEN_CACHE_TTL_IN_MINUTES", 10),
			EncouragementRequestsPerMin:   utils.GetEnvInt("APP_ENCOURAGEMENT_REQUESTS_PER_MINUTE", 5),
			EncouragementBurst:            utils.GetEnvInt("APP_ENCOURAGEMENT_BURST", 3),
			EncouragementBlockInMinutes:   utils.GetEnvInt("APP_ENCOURAGEMENT_BLOCK_IN_MINUTES", 15),
			PublicRecentEncouragementSize: utils.GetEnvInt("APP_PUBLIC_RECENT_ENCOURAGEMENT_SIZE", constvars.PublicRecentEncouragements),
			EncouragementDailyQuota:       utils.GetEnvInt("APP_ENCOURAGEMENT_DAILY_QUOTA", 50),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("APP_MINIO_BUCKET_NAME", "daily-journal"),
			AvatarMaxUploadSizeInMB:       utils.GetEnvInt("APP_MINIO_AVATAR_MAX_UPLOAD_SIZE_IN_MB", 2),
			PreSignedUrlExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			EventExchange:  utils.GetEnvString("APP_RABBITMQ_EVENT_EXCHANGE", constvars.EventExchangeJournal),
			PublishEnabled: utils.GetEnvBool("APP_RABBITMQ_PUBLISH_ENABLED", true),
		},
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Printf("Error loading timezone %s: %v, will use UTC", cfg.App.Timezone, err)
		location = time.UTC
	}
	cfg.App.Location = location

	return cfg
}
