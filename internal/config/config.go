package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Ranking   RankingConfig   `mapstructure:"ranking"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver    string // mysql, postgres or sqlite
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	Path      string // sqlite file path
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// RankingConfig holds the composite-score weights and normalization targets.
// Weights must sum to 1.0; defaults are applied by LoadConfig when the
// section is absent.
type RankingConfig struct {
	AccuracyWeight     float64 `mapstructure:"accuracy_weight"`
	VolumeWeight       float64 `mapstructure:"volume_weight"`
	ActivityWeight     float64 `mapstructure:"activity_weight"`
	VolumeTarget       int     `mapstructure:"volume_target"`
	ActivityTarget     int     `mapstructure:"activity_target"`
	ActivityWindowDays int     `mapstructure:"activity_window_days"`
}

// DefaultRankingConfig returns the documented default scoring parameters:
// 0.40 accuracy / 0.35 volume / 0.25 activity, full volume score at 1000
// lifetime answers, full activity score at 300 answers in 30 days.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		AccuracyWeight:     0.40,
		VolumeWeight:       0.35,
		ActivityWeight:     0.25,
		VolumeTarget:       1000,
		ActivityTarget:     300,
		ActivityWindowDays: 30,
	}
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("FE_EXAM")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")
	viper.BindEnv("database.path", "DATABASE_PATH")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	applyRankingDefaults(&cfg.Ranking)
	if err := validateRanking(&cfg.Ranking); err != nil {
		return nil, err
	}

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

func applyRankingDefaults(rc *RankingConfig) {
	def := DefaultRankingConfig()
	if rc.AccuracyWeight == 0 && rc.VolumeWeight == 0 && rc.ActivityWeight == 0 {
		rc.AccuracyWeight = def.AccuracyWeight
		rc.VolumeWeight = def.VolumeWeight
		rc.ActivityWeight = def.ActivityWeight
	}
	if rc.VolumeTarget <= 0 {
		rc.VolumeTarget = def.VolumeTarget
	}
	if rc.ActivityTarget <= 0 {
		rc.ActivityTarget = def.ActivityTarget
	}
	if rc.ActivityWindowDays <= 0 {
		rc.ActivityWindowDays = def.ActivityWindowDays
	}
}

func validateRanking(rc *RankingConfig) error {
	sum := rc.AccuracyWeight + rc.VolumeWeight + rc.ActivityWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("ranking weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}
