// Package config loads application configuration from the environment with
// optional Apollo overrides.
package config

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"planforge/internal/logx"
)

var configLogger = logx.GetScope("config")

// Config holds the application configuration
type Config struct {
	AppEnv string
	Server struct {
		Addr string
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text, json
	}
	PG struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	MQ struct {
		URL string // RabbitMQ URL
	}
	ES struct {
		Addrs    string // comma separated
		Username string
		Password string
	}
	JWT struct {
		Algo        string // HS256 | RS256
		HSSecret    string
		RSPrivate   string // PEM
		RSPublic    string // PEM
		Issuer      string
		Audience    string
		AccessMin   int
		RefreshDays int
	}
	LLM struct {
		BaseURL       string // OpenAI-compatible endpoint
		Model         string
		PRDModel      string // model for PRD writing; falls back to Model
		MaxPRDTokens  int    // context token budget before trimming
		RequestSecond int    // per-call timeout in seconds, 0 = none
	}
	Secrets struct {
		// CredentialKey is the hex-encoded 32-byte AES key used to encrypt
		// stored completion-service API keys.
		CredentialKey string
	}
	RateLimit struct {
		WindowSec int
		Max       int
	}
	Apollo struct {
		Enable    bool
		AppID     string
		Cluster   string
		Namespace string
		Addrs     string
		AccessKey string
	}
}

// Load loads config from env, and if enabled, overrides with Apollo values.
// Returns config, the dynamic store, optional apollo closer, and error.
func Load() (*Config, *Store, func(), error) {
	cfg := &Config{}

	// env defaults
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")
	cfg.PG.URL = getEnv("POSTGRES_URL", "")
	cfg.PG.MaxOpenConns = getInt("PG_MAX_OPEN", 10)
	cfg.PG.MaxIdleConns = getInt("PG_MAX_IDLE", 5)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// RabbitMQ
	cfg.MQ.URL = getEnv("RABBITMQ_URL", "")

	// Elasticsearch
	cfg.ES.Addrs = getEnv("ES_ADDRS", "")
	cfg.ES.Username = getEnv("ES_USERNAME", "")
	cfg.ES.Password = getEnv("ES_PASSWORD", "")

	// JWT
	cfg.JWT.Algo = getEnv("JWT_ALGO", "HS256")
	cfg.JWT.HSSecret = getEnv("JWT_HS_SECRET", "dev-secret-change-me")
	cfg.JWT.RSPrivate = getEnv("JWT_RS_PRIVATE", "")
	cfg.JWT.RSPublic = getEnv("JWT_RS_PUBLIC", "")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "planforge")
	cfg.JWT.Audience = getEnv("JWT_AUDIENCE", "planforge-web")
	cfg.JWT.AccessMin = getInt("JWT_ACCESS_MIN", 30)
	cfg.JWT.RefreshDays = getInt("JWT_REFRESH_DAYS", 14)

	// Completion service
	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", "")
	cfg.LLM.Model = getEnv("LLM_MODEL", "gpt-4o-mini")
	cfg.LLM.PRDModel = getEnv("LLM_PRD_MODEL", "")
	cfg.LLM.MaxPRDTokens = getInt("LLM_MAX_PRD_TOKENS", 3500)
	cfg.LLM.RequestSecond = getInt("LLM_REQUEST_SECONDS", 0)

	// Secrets
	cfg.Secrets.CredentialKey = getEnv("CREDENTIAL_KEY", "")

	// Rate limit
	cfg.RateLimit.WindowSec = getInt("RL_WINDOW_SEC", 60)
	cfg.RateLimit.Max = getInt("RL_MAX", 60)

	cfg.Apollo.Enable = getBool("APOLLO_ENABLE", false)
	cfg.Apollo.AppID = getEnv("APOLLO_APP_ID", "")
	cfg.Apollo.Cluster = getEnv("APOLLO_CLUSTER", "default")
	cfg.Apollo.Namespace = getEnv("APOLLO_NAMESPACE", "application")
	cfg.Apollo.Addrs = getEnv("APOLLO_ADDRS", "")
	cfg.Apollo.AccessKey = getEnv("APOLLO_ACCESS_KEY", "")

	store := NewStore(cfg)

	if cfg.Apollo.Enable {
		closer, err := overrideFromApollo(cfg, store)
		if err != nil {
			configLogger.Sugar().Errorf("apollo override failed: %v", err)
			return cfg, store, closer, err
		}
		return cfg, store, closer, nil
	}

	return cfg, store, nil, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	return lo.Ternary(v != "", v, def)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
