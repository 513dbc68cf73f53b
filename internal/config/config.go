package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported backends for the document store and the media host.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	MediaDriverImageKit = "imagekit"
	MediaDriverS3       = "s3"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Document store configuration
	Store StoreConfig

	// Media host configuration
	Media MediaConfig

	// Password hashing and upload limits
	Security SecurityConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" envDefault:"5s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxUploadBytes    int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	EnableSwagger     bool          `env:"ENABLE_SWAGGER" envDefault:"true"`
}

// StoreConfig holds document store configuration
type StoreConfig struct {
	Driver      string        `env:"STORE_DRIVER" envDefault:"postgres"`
	Host        string        `env:"DB_HOST" envDefault:"localhost"`
	Port        string        `env:"DB_PORT" envDefault:"5432"`
	User        string        `env:"DB_USER" envDefault:"postgres"`
	Password    string        `env:"DB_PASSWORD"`
	Name        string        `env:"DB_NAME" envDefault:"postgres"`
	SSLMode     string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConns    int32         `env:"DB_MAX_CONNS" envDefault:"5"`
	MinConns    int32         `env:"DB_MIN_CONNS" envDefault:"0"`
	MaxLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`
	ConnTimeout time.Duration `env:"DB_CONN_TIMEOUT" envDefault:"10s"`
	Migrate     bool          `env:"DB_MIGRATE" envDefault:"true"`
}

// MediaConfig holds media host configuration
type MediaConfig struct {
	Driver string `env:"MEDIA_DRIVER" envDefault:"imagekit"`

	ImageKit ImageKitConfig
	S3       S3Config
}

// ImageKitConfig keeps the variable names used by the original deployment.
type ImageKitConfig struct {
	PublicKey   string `env:"IMAGEKITPUBLIC"`
	PrivateKey  string `env:"IMAGEKITPRIVATE"`
	URLEndpoint string `env:"URLENDPOINT"`
	UploadURL   string `env:"IMAGEKIT_UPLOAD_URL" envDefault:"https://upload.imagekit.io/api/v1/files/upload"`
}

// S3Config holds S3-compatible object storage configuration
type S3Config struct {
	Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket        string `env:"S3_BUCKET"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	BaseEndpoint  string `env:"S3_BASE_ENDPOINT"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
	UsePathStyle  bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
}

// SecurityConfig holds password hashing configuration
type SecurityConfig struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envDefault:"GET,POST,PUT,DELETE,OPTIONS" envSeparator:","`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envDefault:"*" envSeparator:","`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	return FromEnv()
}

// FromEnv parses the process environment without touching .env files.
func FromEnv() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing env configs: %w", err)
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.Store.Password == "" {
			errs = append(errs, errors.New("DB_PASSWORD is required"))
		}
	case StoreDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}

	switch c.Media.Driver {
	case MediaDriverImageKit:
		if c.Media.ImageKit.PrivateKey == "" {
			errs = append(errs, errors.New("IMAGEKITPRIVATE is required"))
		}
		if c.Media.ImageKit.PublicKey == "" {
			log.Println("Warning: IMAGEKITPUBLIC is not configured.")
		}
	case MediaDriverS3:
		if c.Media.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required"))
		}
		if c.Media.S3.PublicBaseURL == "" {
			errs = append(errs, errors.New("S3_PUBLIC_BASE_URL is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MEDIA_DRIVER %q", c.Media.Driver))
	}

	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Security.BcryptCost))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}

	return errors.Join(errs...)
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Store.User, c.Store.Password),
		Host:   c.Store.Host + ":" + c.Store.Port,
		Path:   "/" + c.Store.Name,
	}
	q := url.Values{}
	q.Set("sslmode", c.Store.SSLMode)
	q.Set("connect_timeout", fmt.Sprintf("%d", int(c.Store.ConnTimeout.Seconds())))
	u.RawQuery = q.Encode()
	return u.String()
}
