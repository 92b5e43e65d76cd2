// Package config monta a configuração do seokit em três camadas:
// valores padrão → arquivo YAML opcional → variáveis de ambiente.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	// SimDelay é a latência simulada de cada ferramenta (o "loading").
	SimDelay time.Duration `yaml:"sim_delay"`
	// RandomSeed fixa os geradores simulados; 0 = não semeado.
	RandomSeed  uint64 `yaml:"random_seed"`
	BulkWorkers int    `yaml:"bulk_workers"`

	Quota    QuotaConfig    `yaml:"quota"`
	InFlight InFlightConfig `yaml:"inflight"`
	Usage    UsageConfig    `yaml:"usage"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	Jobs     JobsConfig     `yaml:"jobs"`
	Log      LogConfig      `yaml:"log"`
}

type QuotaConfig struct {
	Enabled    bool          `yaml:"enabled"`
	RPS        float64       `yaml:"rps"`
	Burst      int           `yaml:"burst"`
	KeyHeader  string        `yaml:"key_header"`
	TrustXFF   bool          `yaml:"trust_xff"`
	RetryAfter time.Duration `yaml:"retry_after"`
	AddHeaders bool          `yaml:"add_headers"`
}

type InFlightConfig struct {
	Max     int           `yaml:"max"`
	Timeout time.Duration `yaml:"timeout"`
}

type UsageConfig struct {
	// Backend: "memory" (padrão), "redis" ou "none".
	Backend       string        `yaml:"backend"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	Prefix        string        `yaml:"prefix"`
	TTL           time.Duration `yaml:"ttl"`
	Bucket        string        `yaml:"bucket"`
	TrackClients  bool          `yaml:"track_clients"`
}

type MonitorConfig struct {
	MinInterval time.Duration `yaml:"min_interval"`
	Max         int           `yaml:"max"`
	History     int           `yaml:"history"`
}

type JobsConfig struct {
	TTL time.Duration `yaml:"ttl"`
	Max int           `yaml:"max"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		ListenAddr:  ":8080",
		SimDelay:    800 * time.Millisecond,
		BulkWorkers: 4,
		Quota: QuotaConfig{
			Enabled:    true,
			RPS:        5,
			Burst:      20,
			RetryAfter: time.Second,
		},
		InFlight: InFlightConfig{Max: 100},
		Usage: UsageConfig{
			Backend: "memory",
			Prefix:  "seokit:usage",
			TTL:     24 * time.Hour,
			Bucket:  "minute",
		},
		Monitor: MonitorConfig{MinInterval: 5 * time.Second, Max: 50, History: 50},
		Jobs:    JobsConfig{TTL: 10 * time.Minute, Max: 10000},
		Log:     LogConfig{Level: "info"},
	}
}

// Load aplica as três camadas. path vazio pula o arquivo.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.ListenAddr = getenvDefault("LISTEN_ADDR", cfg.ListenAddr)
	cfg.SimDelay = getenvDurationDefault("SIM_DELAY", cfg.SimDelay)
	cfg.RandomSeed = getenvUint64Default("RANDOM_SEED", cfg.RandomSeed)
	cfg.BulkWorkers = getenvIntDefault("BULK_WORKERS", cfg.BulkWorkers)

	q := &cfg.Quota
	q.Enabled = getenvBoolDefault("QUOTA_ENABLED", q.Enabled)
	q.RPS = getenvFloatDefault("QUOTA_RPS", q.RPS)
	// IMPORTANTE: o burst deixa passar uma rajada inicial. Com RPS muito baixo
	// (ex: 0.02) e burst 20 parece que a cota não funciona, então sem
	// QUOTA_BURST explícito o burst cai para 1.
	if burst, ok := getenvInt("QUOTA_BURST"); ok {
		q.Burst = burst
	} else if getenvIsSet("QUOTA_RPS") && q.RPS > 0 && q.RPS < 1 {
		q.Burst = 1
	}
	q.KeyHeader = getenvDefault("QUOTA_KEY_HEADER", q.KeyHeader)
	q.TrustXFF = getenvBoolDefault("TRUST_XFF", q.TrustXFF)
	q.RetryAfter = getenvDurationDefault("QUOTA_RETRY_AFTER", q.RetryAfter)
	q.AddHeaders = getenvBoolDefault("QUOTA_HEADERS", q.AddHeaders)

	cfg.InFlight.Max = getenvIntDefault("INFLIGHT_MAX", cfg.InFlight.Max)
	cfg.InFlight.Timeout = getenvDurationDefault("INFLIGHT_TIMEOUT", cfg.InFlight.Timeout)

	u := &cfg.Usage
	u.Backend = strings.ToLower(getenvDefault("USAGE_BACKEND", u.Backend))
	u.RedisAddr = getenvDefault("USAGE_REDIS_ADDR", u.RedisAddr)
	u.RedisPassword = getenvDefault("USAGE_REDIS_PASSWORD", u.RedisPassword)
	u.RedisDB = getenvIntDefault("USAGE_REDIS_DB", u.RedisDB)
	u.Prefix = getenvDefault("USAGE_PREFIX", u.Prefix)
	u.TTL = getenvDurationDefault("USAGE_TTL", u.TTL)
	u.Bucket = getenvDefault("USAGE_BUCKET", u.Bucket)
	u.TrackClients = getenvBoolDefault("USAGE_TRACK_CLIENTS", u.TrackClients)

	cfg.Monitor.MinInterval = getenvDurationDefault("MONITOR_MIN_INTERVAL", cfg.Monitor.MinInterval)
	cfg.Monitor.Max = getenvIntDefault("MONITOR_MAX", cfg.Monitor.Max)
	cfg.Monitor.History = getenvIntDefault("MONITOR_HISTORY", cfg.Monitor.History)

	cfg.Jobs.TTL = getenvDurationDefault("JOB_TTL", cfg.Jobs.TTL)
	cfg.Jobs.Max = getenvIntDefault("JOB_MAX", cfg.Jobs.Max)

	cfg.Log.Level = getenvDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Development = getenvBoolDefault("LOG_DEVELOPMENT", cfg.Log.Development)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return errors.New("LISTEN_ADDR is required")
	}
	if c.SimDelay < 0 {
		return errors.New("SIM_DELAY must be >= 0")
	}
	if c.Quota.Enabled {
		if c.Quota.RPS <= 0 {
			return errors.New("QUOTA_RPS must be > 0")
		}
		if c.Quota.Burst <= 0 {
			return errors.New("QUOTA_BURST must be > 0")
		}
	}
	if c.InFlight.Max < 0 {
		return errors.New("INFLIGHT_MAX must be >= 0")
	}
	switch c.Usage.Backend {
	case "memory", "none":
	case "redis":
		if strings.TrimSpace(c.Usage.RedisAddr) == "" {
			return errors.New("USAGE_REDIS_ADDR is required when USAGE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("USAGE_BACKEND %q is not one of memory|redis|none", c.Usage.Backend)
	}
	if c.Monitor.MinInterval <= 0 {
		return errors.New("MONITOR_MIN_INTERVAL must be > 0")
	}
	return nil
}
