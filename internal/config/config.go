package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Backend          Backend          `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	Chat             Chat             `mapstructure:",squash"`
	Actions          Actions          `mapstructure:",squash"`
	DirectoryRefresh DirectoryRefresh `mapstructure:",squash"`
	CORS             CORS             `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// Backend points at the analytics REST API that owns every customer metric.
type Backend struct {
	BaseURL string        `mapstructure:"c360_api_url"`
	APIKey  string        `mapstructure:"c360_api_key"`
	Timeout time.Duration `mapstructure:"c360_api_timeout"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cache struct {
	TTL             time.Duration `mapstructure:"cache_ttl"`
	StaleAfter      time.Duration `mapstructure:"cache_stale_after"`
	CleanupInterval time.Duration `mapstructure:"cache_cleanup_interval"`
	RefreshTimeout  time.Duration `mapstructure:"cache_refresh_timeout"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	RedisPrefix     string        `mapstructure:"redis_prefix"`
}

type Chat struct {
	OpenAIAPIKey  string        `mapstructure:"openai_api_key"`
	OpenAIModel   string        `mapstructure:"openai_model"`
	HistoryWindow int           `mapstructure:"chat_history_window"`
	SessionTTL    time.Duration `mapstructure:"chat_session_ttl"`
}

type Actions struct {
	BannerDuration time.Duration `mapstructure:"action_banner_duration"`
	KafkaBrokers   []string      `mapstructure:"kafka_brokers"`
	KafkaTopic     string        `mapstructure:"action_events_topic"`
}

type DirectoryRefresh struct {
	CronSchedule string `mapstructure:"directory_refresh_cron"`
	Enabled      bool   `mapstructure:"directory_refresh_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/customer360")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("C360_API_URL", "http://localhost:5000/api")
	viper.SetDefault("C360_API_KEY", "")
	viper.SetDefault("C360_API_TIMEOUT", "15s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CACHE_TTL", "10m")
	viper.SetDefault("CACHE_STALE_AFTER", "1m")
	viper.SetDefault("CACHE_CLEANUP_INTERVAL", "15m")
	viper.SetDefault("CACHE_REFRESH_TIMEOUT", "20s")
	viper.SetDefault("REDIS_ADDR", "") // empty keeps the cache in-process only
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_PREFIX", "c360")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("CHAT_HISTORY_WINDOW", 6)
	viper.SetDefault("CHAT_SESSION_TTL", "2h")

	viper.SetDefault("ACTION_BANNER_DURATION", "5s")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("ACTION_EVENTS_TOPIC", "c360.actions.executed")

	viper.SetDefault("DIRECTORY_REFRESH_CRON", "*/15 * * * *")
	viper.SetDefault("DIRECTORY_REFRESH_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // local development only

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: using environment loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Actions.KafkaBrokers = compact(config.Actions.KafkaBrokers)
	config.CORS.AllowedOrigins = compact(config.CORS.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact drops the empty entries produced by splitting an unset list variable.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
