package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Profile sources.
const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceMongo  = "mongo"
)

// Asset resolvers.
const (
	ResolverPath = "path"
	ResolverS3   = "s3"
)

// S3Config holds the bucket settings used when ASSET_RESOLVER=s3.
type S3Config struct {
	Endpoint   string
	Region     string
	Bucket     string
	Prefix     string
	AccessKey  string
	SecretKey  string
	PresignTTL time.Duration
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr              string
	Env               string
	LogLevel          string
	ProfileSource     string
	ProfilesFile      string
	MongoURI          string
	MongoDatabase     string
	ProfileCollection string
	Timeout           time.Duration
	StaticDir         string
	AssetResolver     string
	AssetBaseURL      string
	S3                S3Config
}

// Load reads .env (outside production) and environment variables and returns a populated Config.
func Load() Config {
	if !strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		_ = godotenv.Load()
	}

	return Config{
		Addr:              envOrDefault("HTTP_ADDR", ":8080"),
		Env:               envOrDefault("APP_ENV", "development"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		ProfileSource:     strings.ToLower(envOrDefault("PROFILE_SOURCE", SourceStatic)),
		ProfilesFile:      strings.TrimSpace(os.Getenv("PROFILES_FILE")),
		MongoURI:          envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:     envOrDefault("MONGO_DB", "shopfront"),
		ProfileCollection: envOrDefault("PROFILE_COLLECTION", "profiles"),
		Timeout:           durationOrDefault("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		StaticDir:         envOrDefault("STATIC_DIR", "public"),
		AssetResolver:     strings.ToLower(envOrDefault("ASSET_RESOLVER", ResolverPath)),
		AssetBaseURL:      envOrDefault("ASSET_BASE_URL", "/static"),
		S3: S3Config{
			Endpoint:   strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			Region:     envOrDefault("S3_REGION", "auto"),
			Bucket:     strings.TrimSpace(os.Getenv("S3_BUCKET")),
			Prefix:     strings.TrimSpace(os.Getenv("S3_PREFIX")),
			AccessKey:  strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
			SecretKey:  strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
			PresignTTL: durationOrDefault("S3_PRESIGN_TTL", 15*time.Minute),
		},
	}
}

// Validate reports every misconfiguration at once.
func (c Config) Validate() error {
	var errs []error

	switch c.ProfileSource {
	case SourceStatic:
	case SourceFile:
		if c.ProfilesFile == "" {
			errs = append(errs, errors.New("PROFILES_FILE is required when PROFILE_SOURCE=file"))
		}
	case SourceMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI is required when PROFILE_SOURCE=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PROFILE_SOURCE %q", c.ProfileSource))
	}

	switch c.AssetResolver {
	case ResolverPath:
	case ResolverS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required when ASSET_RESOLVER=s3"))
		}
		if c.S3.AccessKey == "" || c.S3.SecretKey == "" {
			errs = append(errs, errors.New("S3_ACCESS_KEY and S3_SECRET_KEY are required when ASSET_RESOLVER=s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ASSET_RESOLVER %q", c.AssetResolver))
	}

	return errors.Join(errs...)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return fallback
}
