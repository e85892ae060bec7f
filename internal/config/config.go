package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	EnvPort       = "ECHO_PORT"
	EnvReadBuffer = "ECHO_READ_BUFFER"
	EnvLogLevel   = "ECHO_LOG_LEVEL"
	EnvLogFormat  = "ECHO_LOG_FORMAT"
	EnvAdminAddr  = "ECHO_ADMIN_ADDR"
	EnvAddr       = "ECHO_ADDR"

	DefaultPort       = 8081
	DefaultReadBuffer = 64 * 1024
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultAddr       = "localhost:8081"
)

type Config struct {
	Port       int
	ReadBuffer int
	LogLevel   string
	LogFormat  string
	// AdminAddr is empty when the admin listener is disabled.
	AdminAddr string
}

// Load reads the server configuration from the environment.
func Load() (*Config, error) {
	port, err := GetEnvInt(EnvPort, DefaultPort)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%s out of range: %d", EnvPort, port)
	}

	readBuffer, err := GetEnvInt(EnvReadBuffer, DefaultReadBuffer)
	if err != nil {
		return nil, err
	}
	if readBuffer <= 0 {
		return nil, fmt.Errorf("%s must be positive: %d", EnvReadBuffer, readBuffer)
	}

	return &Config{
		Port:       port,
		ReadBuffer: readBuffer,
		LogLevel:   GetEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:  GetEnv(EnvLogFormat, DefaultLogFormat),
		AdminAddr:  GetEnv(EnvAdminAddr, ""),
	}, nil
}

// GetEnv looks up key in the environment, or reads the file named by
// key+"_FILE". fallback is returned when neither is set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	} else if value, ok := os.LookupEnv(key + "_FILE"); ok {
		dat, err := os.ReadFile(filepath.Clean(value))
		if err == nil {
			return strings.TrimSpace(string(dat))
		}
	}
	return fallback
}

func GetEnvInt(key string, fallback int) (int, error) {
	value := GetEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}
