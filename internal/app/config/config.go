package config

import (
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", true),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			ServiceLogDirectory: utils.GetEnvString("LOGGER_SERVICE_LOG_DIRECTORY", "logs"),
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
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Europe/Madrid"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 120),
			LockExpiryInSeconds:      utils.GetEnvInt("APP_LOCK_EXPIRY_IN_SECONDS", 300),
			SessionCacheTTLInMinutes: utils.GetEnvInt("APP_SESSION_CACHE_TTL_IN_MINUTES", 480),
		},
		WSAPI: AppWSAPI{
			Endpoint:             utils.GetEnvString("WSAPI_ENDPOINT", "https://dev-api.linkcareapp.com/ServerWSDL.php"),
			Token:                utils.GetEnvString("WSAPI_TOKEN", ""),
			User:                 utils.GetEnvString("WSAPI_SERVICE_USER", "service"),
			Password:             utils.GetEnvString("WSAPI_SERVICE_PASSWORD", "password"),
			Team:                 utils.GetEnvString("WSAPI_SERVICE_TEAM", "LINKCARE"),
			Role:                 utils.GetEnvString("WSAPI_SERVICE_ROLE", wsapi_dto.RoleService),
			Timezone:             utils.GetEnvString("WSAPI_TIMEZONE", "Europe/Madrid"),
			ReuseExistingSession: utils.GetEnvBool("WSAPI_REUSE_EXISTING_SESSION", true),
			MaxCallsPerSecond:    utils.GetEnvFloat("WSAPI_MAX_CALLS_PER_SECOND", 0),
		},
		Training: AppTraining{
			TrainingTaskCode:    utils.GetEnvString("TRAINING_TASK_CODE", "DT_EJERCICIOS"),
			SummaryFormCode:     utils.GetEnvString("TRAINING_SUMMARY_FORM_CODE", "DT_SUMMARY_FORM"),
			ExercisesArrayItem:  utils.GetEnvString("TRAINING_EXERCISES_ARRAY_ITEM", "FECHA_EJERCICIOS"),
			StretchingArrayItem: utils.GetEnvString("TRAINING_STRETCHING_ARRAY_ITEM", "FECHA_ESTIRAMIENTOS"),
			StretchingPrefix:    utils.GetEnvString("TRAINING_STRETCHING_PREFIX", "ESTIRAMIENTO"),
			EffortItemCode:      utils.GetEnvString("TRAINING_EFFORT_ITEM_CODE", "VAS"),
			EffortFormPattern:   utils.GetEnvString("TRAINING_EFFORT_FORM_PATTERN", "DT_*_CONTENT"),
			EffortLow:           utils.GetEnvFloat("TRAINING_EFFORT_LOW", 4),
			EffortHigh:          utils.GetEnvFloat("TRAINING_EFFORT_HIGH", 7),
			EffortVeryHigh:      utils.GetEnvFloat("TRAINING_EFFORT_VERY_HIGH", 9),
		},
		TaskStatus: AppTaskStatus{
			Open:      utils.GetEnvList("TASK_STATUS_OPEN", wsapi_dto.DefaultStatusSets.Open),
			Closed:    utils.GetEnvList("TASK_STATUS_CLOSED", wsapi_dto.DefaultStatusSets.Closed),
			Expired:   utils.GetEnvList("TASK_STATUS_EXPIRED", wsapi_dto.DefaultStatusSets.Expired),
			Cancelled: utils.GetEnvList("TASK_STATUS_CANCELLED", wsapi_dto.DefaultStatusSets.Cancelled),
		},
		Auth: AppAuth{
			APIKey:               utils.GetEnvString("AUTH_API_KEY", ""),
			JWTSecret:            utils.GetEnvString("AUTH_JWT_SECRET", ""),
			JWTIssuer:            utils.GetEnvString("AUTH_JWT_ISSUER", "linkcare-service"),
			JWTTokenTTLInMinutes: utils.GetEnvInt("AUTH_JWT_TOKEN_TTL_IN_MINUTES", 60),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:        utils.GetEnvBool("RABBITMQ_ENABLED", false),
			IndicatorQueue: utils.GetEnvString("RABBITMQ_INDICATOR_QUEUE", "training.indicators"),
		},
		Minio: AppMinio{
			Enabled:    utils.GetEnvBool("MINIO_ENABLED", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "training-reports"),
		},
	}
}
