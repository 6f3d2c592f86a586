package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	AutoMigrate        bool
}

// AWSConfig holds credentials and settings for Kinesis Video Streams and Bedrock.
// Empty keys fall back to the default AWS credential chain.
type AWSConfig struct {
	Region              string
	AccessKeyID         string
	SecretAccessKey     string
	HLSExpiresSec       int
	BedrockDefaultModel string
}

// AzureConfig holds the service principal used to read transcripts from Blob Storage.
type AzureConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	AccountName  string
	Container    string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds the HLS session cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port              string
	Timezone          string
	LogLevel          string
	CORSAllowOrigins  string
	TranscriptStorage string
	Database          DatabaseConfig
	AWS               AWSConfig
	Azure             AzureConfig
	MinIO             MinIOConfig
	Redis             RedisConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:              getEnv("PORT", "8080"),
		Timezone:          getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins:  getEnv("CORS_ALLOW_ORIGINS", "*"),
		TranscriptStorage: strings.ToLower(getEnv("TRANSCRIPT_STORAGE", "azure")),
		Database: DatabaseConfig{
			Host:               getEnv("PG_HOST", getEnv("DB_HOST", "")),
			Port:               getEnv("PG_PORT", getEnv("DB_PORT", "5432")),
			User:               getEnv("PG_USER", getEnv("DB_USER", "")),
			Password:           getEnv("PG_PASSWORD", getEnv("DB_PASSWORD", "")),
			Name:               getEnv("PG_DATABASE", getEnv("DB_NAME", "")),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", false),
		},
		AWS: AWSConfig{
			Region:              getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:         getEnv("AWS_ACCESS_KEY_ID", getEnv("AWS_ACCESS_KEY", "")),
			SecretAccessKey:     getEnv("AWS_SECRET_ACCESS_KEY", getEnv("AWS_SECRET_KEY", "")),
			HLSExpiresSec:       getEnvInt("KVS_HLS_EXPIRES_SEC", 3600),
			BedrockDefaultModel: getEnv("BEDROCK_DEFAULT_MODEL_ID", "anthropic.claude-3-5-haiku-20241022-v1:0"),
		},
		Azure: AzureConfig{
			TenantID:     getEnv("AZURE_TENANT_ID", ""),
			ClientID:     getEnv("AZURE_CLIENT_ID", ""),
			ClientSecret: getEnv("AZURE_CLIENT_SECRET", ""),
			AccountName:  getEnv("AZURE_STORAGE_ACCOUNT_NAME", ""),
			Container:    getEnv("AZURE_CONTAINER_NAME", ""),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
