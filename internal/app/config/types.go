package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}
)

type (
	InternalConfig struct {
		App     App
		Backend Backend
		JWT     JWT
		Booking Booking
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		Timezone                  string
		AdminAPIKey               string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		MaxTimeRequestsPerSeconds int
	}

	// Backend locates the upstream clinic REST API.
	Backend struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Booking struct {
		DraftTTLInHours             int
		PaymentLockTTLInSeconds     int
		PaymentCurrency             string
		NotificationQueue           string
		PhotoURLExpiryTimeInHours   int
		PaymentMaxRequestsPerMinute int
		PaymentBlockTimeInMinutes   int
	}
)
