package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig     `envconfig:"HTTP_SERVER"`
	Database       DatabaseConfig       `envconfig:"DB"`
	Redis          RedisConfig          `envconfig:"REDIS"`
	HttpClient     HttpClientConfig     `envconfig:"HTTP_CLIENT"`
	MessageStream  MessageStreamConfig  `envconfig:"MESSAGE_STREAM"`
	UserService    UserServiceConfig    `envconfig:"USER_SERVICE"`
	PaymentGateway PaymentGatewayConfig `envconfig:"PAYMENT_GATEWAY"`
	Settlement     SettlementConfig     `envconfig:"SETTLEMENT"`
	Scheduler      SchedulerConfig      `envconfig:"SCHEDULER"`
	APM            APMConfig            `envconfig:"APM"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"9090"`
	Name string `envconfig:"NAME" default:"guide-booking-service"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"guide_booking"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	Host     string        `envconfig:"HOST" default:"localhost"`
	Port     string        `envconfig:"PORT" default:"6379"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

type HttpClientConfig struct {
	// Type selects the breaker: "consecutive", "threshold" or "rate".
	Type             string        `envconfig:"TYPE" default:"consecutive"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"10s"`
	ConsecutiveFails int64         `envconfig:"CONSECUTIVE_FAILS" default:"5"`
	Threshold        int64         `envconfig:"THRESHOLD" default:"10"`
	ErrorRate        float64       `envconfig:"ERROR_RATE" default:"0.5"`
	MinSamples       int64         `envconfig:"MIN_SAMPLES" default:"20"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
	// ExchangeName is prefixed to every topic queue.
	ExchangeName string `envconfig:"EXCHANGE_NAME" default:"guide_booking"`
	MaxRetries   int    `envconfig:"MAX_RETRIES" default:"3"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"9091"`
}

type PaymentGatewayConfig struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:9092"`
	APIKey  string `envconfig:"API_KEY"`
}

type SettlementConfig struct {
	CommissionBps int64  `envconfig:"COMMISSION_BPS" default:"1200"`
	HostingFee    string `envconfig:"HOSTING_FEE" default:"1.00"`
	Currency      string `envconfig:"CURRENCY" default:"USD"`
}

type SchedulerConfig struct {
	PayoutBatchCron  string        `envconfig:"PAYOUT_BATCH_CRON" default:"@every 1h"`
	PayoutBatchSize  int           `envconfig:"PAYOUT_BATCH_SIZE" default:"100"`
	PayoutLockExpiry time.Duration `envconfig:"PAYOUT_LOCK_EXPIRY" default:"5m"`
	MonitoringPort   string        `envconfig:"MONITORING_PORT" default:"8080"`
}

type APMConfig struct {
	Enabled bool `envconfig:"ENABLED" default:"false"`
}

func InitConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
