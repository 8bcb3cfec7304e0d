package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, reward amounts)
// Everything is read once at process start; changing a value requires a restart.
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Admin     AdminConfig
	Reward    RewardConfig
	Notify    NotifyConfig
	Inventory InventoryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Webhook-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// File enables a rotating log file next to stdout when set
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type AdminConfig struct {
	UserIDs          []string `envconfig:"ADMIN_USER_IDS" required:"true"`
	JWTSecret        string   `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	JWTDuration      string   `envconfig:"ADMIN_JWT_DURATION" default:"24h"`
	JoinWebhookToken string   `envconfig:"JOIN_WEBHOOK_TOKEN" required:"true"`
}

type RewardConfig struct {
	EnrolledGroups        []string `envconfig:"REWARD_ENROLLED_GROUPS" required:"true"`
	ReferrerVouchers      int      `envconfig:"REWARD_REFERRER_VOUCHERS" default:"1"`
	NewMemberVouchers     int      `envconfig:"REWARD_NEW_MEMBER_VOUCHERS" default:"1"`
	RecordUnreferredJoins bool     `envconfig:"REWARD_RECORD_UNREFERRED_JOINS" default:"true"`
}

type NotifyConfig struct {
	// WebhookURL empty means notifications are only written to the log
	WebhookURL    string        `envconfig:"NOTIFY_WEBHOOK_URL"`
	WebhookSecret string        `envconfig:"NOTIFY_WEBHOOK_SECRET"`
	Timeout       time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	RatePerSecond float64       `envconfig:"NOTIFY_RATE_PER_SECOND" default:"10"`
	Burst         int           `envconfig:"NOTIFY_BURST" default:"5"`
}

type InventoryConfig struct {
	LowWatermark  int           `envconfig:"INVENTORY_LOW_WATERMARK" default:"10"`
	CheckInterval time.Duration `envconfig:"INVENTORY_CHECK_INTERVAL" default:"15m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Reward.NewMemberVouchers < 0 || cfg.Reward.NewMemberVouchers > 1 {
		return Config{}, fmt.Errorf("REWARD_NEW_MEMBER_VOUCHERS must be 0 or 1, got %d", cfg.Reward.NewMemberVouchers)
	}
	if cfg.Reward.ReferrerVouchers < 0 {
		return Config{}, fmt.Errorf("REWARD_REFERRER_VOUCHERS cannot be negative, got %d", cfg.Reward.ReferrerVouchers)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Admin: AdminConfig{
			UserIDs:          []string{"admin-1"},
			JWTSecret:        "test-secret",
			JWTDuration:      "1h",
			JoinWebhookToken: "test-webhook-token",
		},
		Reward: RewardConfig{
			EnrolledGroups:        []string{"group-1"},
			ReferrerVouchers:      1,
			NewMemberVouchers:     1,
			RecordUnreferredJoins: true,
		},
		Notify: NotifyConfig{
			Timeout:       time.Second,
			RatePerSecond: 100,
			Burst:         10,
		},
		Inventory: InventoryConfig{
			LowWatermark:  5,
			CheckInterval: time.Minute,
		},
	}
}
