package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort          string
	OperatorWorkers   int
	RateLimitRPS      float64
	RateLimitBurst    int
	DashboardCacheTTL time.Duration
	LogLevel          logrus.Level
}

// ProcessEnvironmentVariables reads the configuration from the environment,
// loading envFiles (default ".env") first when they exist. Variables already
// set in the environment win over file values.
func ProcessEnvironmentVariables(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:   "localhost",
		PostgresPort:      "5433",
		PostgresDB:        "postgres",
		PostgresUsername:  "postgres",
		PostgresPassword:  "testpassword",
		HTTPPort:          "9446",
		OperatorWorkers:   1,
		RateLimitRPS:      20,
		RateLimitBurst:    40,
		DashboardCacheTTL: 30 * time.Second,
		LogLevel:          logrus.InfoLevel,
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")

	var err error
	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		if env.OperatorWorkers, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); len(v) != 0 {
		if env.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); len(v) != 0 {
		if env.RateLimitBurst, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
	}
	if v := os.Getenv("DASHBOARD_CACHE_TTL"); len(v) != 0 {
		if env.DashboardCacheTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("DASHBOARD_CACHE_TTL: %w", err)
		}
	}
	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		if env.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func setString(target *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.PostgresAddress == "" {
		errs = append(errs, errors.New("POSTGRES_ADDRESS is required"))
	}
	if _, err := strconv.ParseUint(c.PostgresPort, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("POSTGRES_PORT %q is not a port", c.PostgresPort))
	}
	if _, err := strconv.ParseUint(c.HTTPPort, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("HTTP_PORT %q is not a port", c.HTTPPort))
	}
	if c.OperatorWorkers < 1 {
		errs = append(errs, errors.New("OPERATOR_WORKERS must be at least 1"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.DashboardCacheTTL < 0 {
		errs = append(errs, errors.New("DASHBOARD_CACHE_TTL must not be negative"))
	}
	return errors.Join(errs...)
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
