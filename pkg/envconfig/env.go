package envconfig

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"drink-coffee/pkg/logger"
)

// GetEnv returns the value of the environment variable or the fallback
// when the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetLogLevel reads LOG_LEVEL and maps it to a logger level, defaulting
// to info for unknown values.
func GetLogLevel() logger.LogLevel {
	switch strings.ToLower(GetEnv("LOG_LEVEL", "info")) {
	case "debug":
		return logger.LevelDebug
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// LoadEnvFile loads KEY=VALUE pairs from a .env style file into the process
// environment. Existing environment variables are never overridden. Lines
// starting with '#' and blank lines are skipped.
func LoadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open env file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)

		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return scanner.Err()
}
