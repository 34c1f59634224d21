package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("JWT_EXPIRES_IN", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.False(t, cfg.UsesMongo())
	assert.Equal(t, 24*time.Hour, cfg.JWT.JWTExpiresIn)
	assert.Equal(t, "/api", cfg.GetAPIBasePath())
	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.Contains(t, cfg.Database.DSN, "dbname=tourly_db")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "MONGO")
	t.Setenv("JWT_EXPIRES_IN", "3600")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("REDIS_CACHE_TTL", "5m")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.UsesMongo())
	assert.Equal(t, time.Hour, cfg.JWT.JWTExpiresIn)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}
