package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, business hours, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Business BusinessConfig
	Bag      BagConfig
	Notify   NotifyConfig
	Telegram TelegramConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Phnom_Penh"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Phnom_Penh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BusinessConfig pins the venue: one branch, one operating timezone, fixed
// walk-in hours. Visitors book from anywhere but availability is always
// evaluated in this zone.
type BusinessConfig struct {
	TimeZone  string `envconfig:"BUSINESS_TIMEZONE" default:"Asia/Phnom_Penh"`
	OpenHour  int    `envconfig:"BUSINESS_OPEN_HOUR" default:"7"`
	CloseHour int    `envconfig:"BUSINESS_CLOSE_HOUR" default:"21"`
	Branch    string `envconfig:"BUSINESS_BRANCH" default:"HV8C+9C8, Phnom Penh Hanoi Friendship Blvd (1019), Phnom Penh"`
}

type BagConfig struct {
	Path          string        `envconfig:"BAG_DB_PATH" default:"data/bag.db"`
	CookieName    string        `envconfig:"BAG_COOKIE_NAME" default:"glisten_bag_session"`
	CookieDomain  string        `envconfig:"BAG_COOKIE_DOMAIN" default:""`
	CookieSecure  bool          `envconfig:"BAG_COOKIE_SECURE" default:"false"`
	SessionTTL    time.Duration `envconfig:"BAG_SESSION_TTL" default:"336h"`
	SweepSchedule string        `envconfig:"BAG_SWEEP_SCHEDULE" default:"0 4 * * *"`
}

type NotifyConfig struct {
	WebhookURL string        `envconfig:"NOTIFY_WEBHOOK_URL" default:"http://localhost:8080/api/notify"`
	Timeout    time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
}

type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
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
			TimeZone: "Asia/Phnom_Penh",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Phnom_Penh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		Business: BusinessConfig{
			TimeZone:  "Asia/Phnom_Penh",
			OpenHour:  7,
			CloseHour: 21,
			Branch:    "HV8C+9C8, Phnom Penh Hanoi Friendship Blvd (1019), Phnom Penh",
		},
		Bag: BagConfig{
			CookieName: "glisten_bag_session",
			SessionTTL: 336 * time.Hour,
		},
	}
}
