package config

import "time"

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Quote    AppQuote    `mapstructure:"quote"`
	Share    AppShare    `mapstructure:"share"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                            string `mapstructure:"env"`
	Port                           string `mapstructure:"port"`
	Version                        string `mapstructure:"version"`
	Address                        string `mapstructure:"address"`
	Timezone                       string `mapstructure:"timezone"`
	PublicBaseUrl                  string `mapstructure:"public_base_url"`
	FrontendDomain                 string `mapstructure:"frontend_domain"`
	EndpointPrefix                 string `mapstructure:"endpoint_prefix"`
	MaxRequests                    int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds       int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte     int    `mapstructure:"request_body_limit_in_megabyte"`
	LoginSessionExpiredTimeInHours int    `mapstructure:"login_session_expired_time_in_hours"`

	// Location is resolved from Timezone once at startup. Every calendar-date decision
	// (today, future dates, quote of the day) uses it.
	Location *time.Location `mapstructure:"-"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppQuote struct {
	FilePath       string `mapstructure:"file_path"`
	WorkerCronSpec string `mapstructure:"worker_cron_spec"`
}

type AppShare struct {
	TokenCacheTTLInMinutes        int `mapstructure:"token_cache_ttl_in_minutes"`
	EncouragementRequestsPerMin   int `mapstructure:"encouragement_requests_per_min"`
	EncouragementBurst            int `mapstructure:"encouragement_burst"`
	EncouragementBlockInMinutes   int `mapstructure:"encouragement_block_in_minutes"`
	PublicRecentEncouragementSize int `mapstructure:"public_recent_encouragement_size"`
	EncouragementDailyQuota       int `mapstructure:"encouragement_daily_quota"`
}

type AppMinio struct {
	BucketName                    string `mapstructure:"bucket_name"`
	AvatarMaxUploadSizeInMB       int    `mapstructure:"avatar_max_upload_size_in_mb"`
	PreSignedUrlExpiryTimeInHours int    `mapstructure:"pre_signed_url_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	EventExchange  string `mapstructure:"event_exchange"`
	PublishEnabled bool   `mapstructure:"publish_enabled"`
}
