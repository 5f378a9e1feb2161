package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Tracking TrackingConfig
	Snapshot SnapshotConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// TrackingConfig carries the board-side business constants. The priority
// thresholds were hard-coded in the legacy UI; here they are configuration.
type TrackingConfig struct {
	PriorityHighThreshold   float64
	PriorityMediumThreshold float64
}

// SnapshotConfig carries the defaults the scheduler falls back to when no
// row exists yet in scheduler_settings. HolidayWeekday is the weekday on
// which absence snapshots are skipped entirely (market-specific).
type SnapshotConfig struct {
	DefaultSnapshotTime string // "HH:MM"
	DefaultResetTime    string // "HH:MM"
	HolidayWeekday      time.Weekday
	SummaryRecipient    string // optional; empty disables run-summary mail
}

type StorageConfig struct {
	UploadDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "TenderDesk"),
		},
		Tracking: TrackingConfig{
			PriorityHighThreshold:   getEnvAsFloat("PRIORITY_HIGH_THRESHOLD", 1000000),
			PriorityMediumThreshold: getEnvAsFloat("PRIORITY_MEDIUM_THRESHOLD", 500000),
		},
		Snapshot: SnapshotConfig{
			DefaultSnapshotTime: getEnv("SNAPSHOT_TIME", "23:55"),
			DefaultResetTime:    getEnv("RESET_TIME", "04:00"),
			HolidayWeekday:      getEnvAsWeekday("HOLIDAY_WEEKDAY", time.Friday),
			SummaryRecipient:    getEnv("SNAPSHOT_SUMMARY_EMAIL", ""),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsWeekday(key string, fallback time.Weekday) time.Weekday {
	strValue := getEnv(key, "")
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strValue == d.String() {
			return d
		}
	}
	return fallback
}
