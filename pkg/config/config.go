package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	AWS    AWSConfig
	Upload UploadConfig
	Email  EmailConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type AWSConfig struct {
	Region          string
	Endpoint        string // optional, for S3-compatible backends
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string // optional, used to build the public file URL
}

type UploadConfig struct {
	PartSize    int64 // bytes
	MaxParts    int
	PresignTTL  time.Duration
	KeyPrefix   string
	MaxBodySize int64 // bytes, server body limit
	SweepSpec   string
	SweepMaxAge time.Duration
}

type EmailConfig struct {
	APIKey  string
	BaseURL string
	Sender  string // "ops@example.com" or "Ops Team <ops@example.com>"
	Owner   string // recipient of submission notifications
	Subject string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        getEnv("AWS_ENDPOINT", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("AWS_BUCKET", ""),
			PublicBaseURL:   getEnv("PUBLIC_BASE_URL", ""),
		},
		Upload: UploadConfig{
			PartSize:    getEnvAsInt64("UPLOAD_PART_SIZE", 10*1024*1024), // 10 MiB
			MaxParts:    int(getEnvAsInt64("UPLOAD_MAX_PARTS", 10000)),   // S3 hard limit
			PresignTTL:  getEnvAsDuration("UPLOAD_PRESIGN_TTL", time.Hour),
			KeyPrefix:   getEnv("UPLOAD_KEY_PREFIX", "intake"),
			MaxBodySize: getEnvAsInt64("SERVER_MAX_BODY_SIZE", 10*1024*1024),
			SweepSpec:   getEnv("UPLOAD_SWEEP_SPEC", "0 0 * * * *"), // hourly
			SweepMaxAge: getEnvAsDuration("UPLOAD_SWEEP_MAX_AGE", 24*time.Hour),
		},
		Email: EmailConfig{
			APIKey:  getEnv("EMAIL_API_KEY", ""),
			BaseURL: getEnv("EMAIL_API_BASE_URL", "https://api.resend.com"),
			Sender:  getEnv("EMAIL_SENDER", ""),
			Owner:   getEnv("EMAIL_OWNER", ""),
			Subject: getEnv("EMAIL_SUBJECT", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
