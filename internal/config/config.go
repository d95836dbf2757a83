package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Property  PropertyConfig  `yaml:"property"  validate:"required"`
	Google    GoogleConfig    `yaml:"google"`
	Pricing   PricingConfig   `yaml:"pricing"   validate:"required"`
	Conflicts ConflictsConfig `yaml:"conflicts" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"domburg"    validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"15m" validate:"required,gt=0"`
}

type PropertyConfig struct {
	Name     string `yaml:"name"     env:"PROPERTY_NAME"     env-default:"Domburg"          validate:"required"`
	Timezone string `yaml:"timezone" env:"PROPERTY_TIMEZONE" env-default:"Europe/Amsterdam" validate:"required"`
}

type GoogleConfig struct {
	// Пустые значения переводят адаптер в режим заглушки.
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE" env-default:""`
	CalendarID      string `yaml:"calendar_id"      env:"GOOGLE_CALENDAR_ID"      env-default:""`
	MaxResults      int64  `yaml:"max_results"      env:"GOOGLE_MAX_RESULTS"      env-default:"250" validate:"min=1,max=2500"`
}

type PricingConfig struct {
	NightlyRate          float64 `yaml:"nightly_rate"           env:"PRICING_NIGHTLY_RATE"           env-default:"95" validate:"gt=0"`
	AlternateNightlyRate float64 `yaml:"alternate_nightly_rate" env:"PRICING_ALTERNATE_NIGHTLY_RATE" env-default:"75" validate:"gt=0"`
	CleaningFee          float64 `yaml:"cleaning_fee"           env:"PRICING_CLEANING_FEE"           env-default:"60" validate:"min=0"`
}

type ConflictsConfig struct {
	ReNotifyDays   int `yaml:"re_notify_days"   env:"CONFLICTS_RE_NOTIFY_DAYS"   env-default:"7"   validate:"min=1"`
	ScanPastDays   int `yaml:"scan_past_days"   env:"CONFLICTS_SCAN_PAST_DAYS"   env-default:"31"  validate:"min=1"`
	ScanFutureDays int `yaml:"scan_future_days" env:"CONFLICTS_SCAN_FUTURE_DAYS" env-default:"730" validate:"min=1"`
}

func (c ConflictsConfig) ReNotifyWindow() time.Duration {
	return time.Duration(c.ReNotifyDays) * 24 * time.Hour
}

func (c ConflictsConfig) ScanPast() time.Duration {
	return time.Duration(c.ScanPastDays) * 24 * time.Hour
}

func (c ConflictsConfig) ScanFuture() time.Duration {
	return time.Duration(c.ScanFutureDays) * 24 * time.Hour
}

type TelegramConfig struct {
	BotToken     string  `yaml:"bot_token"      env:"TELEGRAM_BOT_TOKEN"      env-default:""`
	AdminChatIDs []int64 `yaml:"admin_chat_ids" env:"TELEGRAM_ADMIN_CHAT_IDS"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
