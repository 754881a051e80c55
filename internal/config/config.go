package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Upload   FileUploadConfig
	Webhook  WebhookConfig
	NATS     NATSConfig
	Database DatabaseConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	// File enables a rotated copy of the log stream when set
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"3"`
}

// AuthConfig holds the single admin account and session signing settings.
// There are no demo defaults: the process refuses to start without them.
type AuthConfig struct {
	AdminEmail    string        `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" required:"true"`
	AdminName     string        `envconfig:"ADMIN_NAME" default:"Admin User"`
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"session_token"`
	CookieSecure  bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
}

// StorageDriver selects the object store adapter
type StorageDriver string

const (
	StorageDriverS3    StorageDriver = "s3"
	StorageDriverMinio StorageDriver = "minio"
)

type StorageConfig struct {
	Driver            StorageDriver `envconfig:"STORAGE_DRIVER" default:"s3"`
	Region            string        `envconfig:"STORAGE_REGION" required:"true"`
	BucketName        string        `envconfig:"STORAGE_BUCKET" required:"true"`
	AccessKey         string        `envconfig:"STORAGE_ACCESS_KEY" required:"true"`
	SecretKey         string        `envconfig:"STORAGE_SECRET_KEY" required:"true"`
	Endpoint          string        `envconfig:"STORAGE_ENDPOINT"`
	UseSSL            bool          `envconfig:"STORAGE_USE_SSL" default:"true"`
	UsePathStyle      bool          `envconfig:"STORAGE_USE_PATH_STYLE" default:"false"`
	SignedURLDuration time.Duration `envconfig:"STORAGE_SIGNED_URL_TTL" default:"1h"`
}

type FileUploadConfig struct {
	MaxSize int64 `envconfig:"UPLOAD_MAX_SIZE" default:"10485760"` // 10MiB
}

type WebhookConfig struct {
	URL     string        `envconfig:"WEBHOOK_URL" required:"true"`
	Timeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s"`
}

// NATSConfig configures the optional upload event publisher. Publishing is
// disabled when URL is empty.
type NATSConfig struct {
	URL        string `envconfig:"NATS_URL"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"upload-relay"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"UPLOADS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"uploads.created"`
}

func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

// DatabaseConfig configures the optional upload history. History is disabled
// when Host is empty.
type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER"`
	Password       string        `envconfig:"DB_PASSWORD"`
	Name           string        `envconfig:"DB_NAME"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
