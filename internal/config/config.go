package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// YearPolicyStartDate debits the balance of the year the leave starts in.
	YearPolicyStartDate = "start_date"
	// YearPolicyCurrent debits the balance of the year the decision is made in.
	YearPolicyCurrent = "current"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Leave    LeaveConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

type JWTConfig struct {
	Secret string
}

type LeaveConfig struct {
	ApprovalYearPolicy string
	BalanceInitCron    string
}

// Load reads the process environment. godotenv.Load is expected to have
// run already in main.
func Load() (*Config, error) {
	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:               getEnv("PORT", "3001"),
			CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: 5,
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Leave: LeaveConfig{
			ApprovalYearPolicy: getEnv("LEAVE_APPROVAL_YEAR_POLICY", YearPolicyStartDate),
			BalanceInitCron:    getEnv("BALANCE_INIT_CRON", "0 0 1 1 *"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Database.Name == "" {
		return errors.New("DB_NAME is required")
	}
	switch c.Leave.ApprovalYearPolicy {
	case YearPolicyStartDate, YearPolicyCurrent:
	default:
		return fmt.Errorf("invalid LEAVE_APPROVAL_YEAR_POLICY %q", c.Leave.ApprovalYearPolicy)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
