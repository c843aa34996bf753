package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	for _, key := range []string{"HTTP_ADDR", "PROFILE_SOURCE", "ASSET_RESOLVER", "ASSET_BASE_URL", "MONGO_CONNECT_TIMEOUT", "S3_PRESIGN_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, SourceStatic, cfg.ProfileSource)
	assert.Equal(t, ResolverPath, cfg.AssetResolver)
	assert.Equal(t, "/static", cfg.AssetBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.S3.PresignTTL)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("PROFILE_SOURCE", "Mongo")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("S3_PRESIGN_TTL", "not-a-duration")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, SourceMongo, cfg.ProfileSource)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.S3.PresignTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"static path", Config{ProfileSource: SourceStatic, AssetResolver: ResolverPath}, false},
		{"file without path", Config{ProfileSource: SourceFile, AssetResolver: ResolverPath}, true},
		{"file with path", Config{ProfileSource: SourceFile, ProfilesFile: "p.yaml", AssetResolver: ResolverPath}, false},
		{"unknown source", Config{ProfileSource: "redis", AssetResolver: ResolverPath}, true},
		{"s3 without bucket", Config{ProfileSource: SourceStatic, AssetResolver: ResolverS3}, true},
		{"s3 complete", Config{
			ProfileSource: SourceStatic,
			AssetResolver: ResolverS3,
			S3:            S3Config{Bucket: "b", AccessKey: "k", SecretKey: "s"},
		}, false},
		{"unknown resolver", Config{ProfileSource: SourceStatic, AssetResolver: "imgix"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := Config{Env: "production", LogLevel: "warn"}.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = Config{LogLevel: "chatty"}.NewLogger()
	assert.Error(t, err)
}
