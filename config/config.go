package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServiceName       string
	ServicePort       string
	MetricsPort       string
	LogLevel          string
	ServiceAddress    string
	MongoDBConfig     MongoDBConfig
	PostgreSQLConfig  PostgreSQLConfig
	KafkaConfig       KafkaConfig
	TracingConfig     TracingConfig
	IntegrationConfig IntegrationConfig
	DegradeConfig     DegradeConfig
	HealthCheckConfig HealthCheckConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress       string
	ConsumerGroup       string
	ConsumerMaxAttempts int
	RetryBackoff        time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

type IntegrationConfig struct {
	ProductServiceURL        string
	RecommendationServiceURL string
	ReviewServiceURL         string
	RequestTimeout           time.Duration
}

// DegradeConfig decides which parts of a composite read fall back instead of
// failing the request.
type DegradeConfig struct {
	Product         bool
	Recommendations bool
	Reviews         bool
}

type HealthCheckConfig struct {
	Interval time.Duration
}

func CreateNewConfig(serviceName string) *Config {
	godotenv.Load(".env")

	conf := Config{
		ServiceName: getEnv("SERVICE_NAME", serviceName),
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MongoDBConfig: MongoDBConfig{
			DBHost: getEnv("MONGODB_HOST", "localhost"),
			DBPort: getEnv("MONGODB_PORT", "27017"),
			DBName: getEnv("MONGODB_NAME", serviceName),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBName:     getEnv("DB_NAME", "review-db"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:       getEnv("BROKER_ADDRESS", "localhost:9092"),
			ConsumerGroup:       getEnv("CONSUMER_GROUP", serviceName),
			ConsumerMaxAttempts: getEnvInt("CONSUMER_MAX_ATTEMPTS", 3),
			RetryBackoff:        getEnvDuration("RETRY_BACKOFF", time.Second),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		IntegrationConfig: IntegrationConfig{
			ProductServiceURL:        getEnv("PRODUCT_SERVICE_URL", "http://product"),
			RecommendationServiceURL: getEnv("RECOMMENDATION_SERVICE_URL", "http://recommendation"),
			ReviewServiceURL:         getEnv("REVIEW_SERVICE_URL", "http://review"),
			RequestTimeout:           getEnvDuration("DOWNSTREAM_TIMEOUT", 5*time.Second),
		},
		DegradeConfig: DegradeConfig{
			Product:         getEnvBool("DEGRADE_PRODUCT", false),
			Recommendations: getEnvBool("DEGRADE_RECOMMENDATIONS", true),
			Reviews:         getEnvBool("DEGRADE_REVIEWS", true),
		},
		HealthCheckConfig: HealthCheckConfig{
			Interval: getEnvDuration("HEALTH_CHECK_INTERVAL", 10*time.Second),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Err(err).Str("component", "CreateNewConfig").Str("key", key).Msg("using default")
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Err(err).Str("component", "CreateNewConfig").Str("key", key).Msg("using default")
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Err(err).Str("component", "CreateNewConfig").Str("key", key).Msg("using default")
		return fallback
	}
	return parsed
}
