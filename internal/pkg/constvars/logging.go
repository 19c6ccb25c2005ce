package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingUserIDKey         = "user_id"
	LoggingEntryDateKey      = "entry_date"
	LoggingCategoryKey       = "category"
	LoggingDateKeyKey        = "date_key"
	LoggingQuoteIndexKey     = "quote_index"
	LoggingShareTokenKey     = "share_token"
	LoggingRoutingKey        = "routing_key"
	LoggingResponseLengthKey = "response_length"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingCronSpecKey       = "cron_spec"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
