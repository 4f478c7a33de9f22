package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingDataKey            = "data"
	LoggingQueryParamsKey     = "query_params"
	LoggingResponseKey        = "response"
	LoggingRequestKey         = "request"
	LoggingResponseLengthKey  = "response_length"
	LoggingBookingIDKey       = "booking_id"
	LoggingPatientIDKey       = "patient_id"
	LoggingDoctorEmailKey     = "doctor_email"
	LoggingSpecialtyKey       = "specialty"
	LoggingDateKey            = "date"
	LoggingTimeKey            = "time"
	LoggingCostKey            = "cost"
	LoggingScheduleSeqKey     = "schedule_seq"
	LoggingScheduleDaysKey    = "schedule_days"
	LoggingPatientCountKey    = "patient_count"
	LoggingDoctorCountKey     = "doctor_count"
	LoggingTransactionIDKey   = "transaction_id"
	LoggingQueueKey           = "queue"
	LoggingRedisKey           = "redis_key"
	LoggingLockValueKey       = "lock_value"
	LoggingLockExpirationKey  = "lock_expiration"
	LoggingLockStoredValueKey = "lock_stored_value"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
)
