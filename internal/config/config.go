package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string
	LogLevel string

	OperatorWorkers   int
	OperatorQueueSize int

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// ProcessEnvironmentVariables loads an optional .env file and reads the
// environment on top of the defaults. Values that fail to parse are errors;
// range checks are left to Validate.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	env := Config{
		Port:              "9446",
		LogLevel:          "info",
		OperatorWorkers:   4,
		OperatorQueueSize: 1000,
		RequestTimeout:    5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}

	if v := os.Getenv("PORT"); len(v) != 0 {
		env.Port = v
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		env.LogLevel = v
	}

	var err error
	if env.OperatorWorkers, err = getEnvInt("OPERATOR_WORKERS", env.OperatorWorkers); err != nil {
		return nil, err
	}
	if env.OperatorQueueSize, err = getEnvInt("OPERATOR_QUEUE_SIZE", env.OperatorQueueSize); err != nil {
		return nil, err
	}
	if env.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", env.RequestTimeout); err != nil {
		return nil, err
	}
	if env.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", env.ShutdownTimeout); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}
	if c.OperatorQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator queue size %d: must be at least 1", c.OperatorQueueSize))
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must be positive", c.RequestTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return i, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
