package config

import (
	"citamed-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "citamed"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "doctor-photos"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			AdminAPIKey:               utils.GetEnvString("APP_ADMIN_API_KEY", ""),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Backend: Backend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Booking: Booking{
			DraftTTLInHours:             utils.GetEnvInt("BOOKING_DRAFT_TTL_IN_HOURS", 24),
			PaymentLockTTLInSeconds:     utils.GetEnvInt("BOOKING_PAYMENT_LOCK_TTL_IN_SECONDS", 30),
			PaymentCurrency:             utils.GetEnvString("BOOKING_PAYMENT_CURRENCY", "usd"),
			NotificationQueue:           utils.GetEnvString("BOOKING_NOTIFICATION_QUEUE", "booking_notifications"),
			PhotoURLExpiryTimeInHours:   utils.GetEnvInt("BOOKING_PHOTO_URL_EXPIRY_TIME_IN_HOURS", 1),
			PaymentMaxRequestsPerMinute: utils.GetEnvInt("BOOKING_PAYMENT_MAX_REQUESTS_PER_MINUTE", 5),
			PaymentBlockTimeInMinutes:   utils.GetEnvInt("BOOKING_PAYMENT_BLOCK_TIME_IN_MINUTES", 5),
		},
	}
}
