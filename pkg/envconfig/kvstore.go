package envconfig

import (
	"strconv"
	"time"

	"drink-coffee/pkg/kvstore"
)

// LoadKVStoreConfig loads key-value store configuration from environment variables
func LoadKVStoreConfig() kvstore.Config {
	config := kvstore.DefaultConfig()

	// Override with environment variables if they exist
	if addr := GetEnv("KV_ADDR", ""); addr != "" {
		config.Addr = addr
	}

	if password := GetEnv("KV_PASSWORD", ""); password != "" {
		config.Password = password
	}

	if dbStr := GetEnv("KV_DB", ""); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil && db >= 0 {
			config.DB = db
		}
	}

	if prefix := GetEnv("KV_KEY_PREFIX", ""); prefix != "" {
		config.KeyPrefix = prefix
	}

	if dialTimeoutStr := GetEnv("KV_DIAL_TIMEOUT", ""); dialTimeoutStr != "" {
		if dialTimeout, err := time.ParseDuration(dialTimeoutStr); err == nil {
			config.DialTimeout = dialTimeout
		}
	}

	if readTimeoutStr := GetEnv("KV_READ_TIMEOUT", ""); readTimeoutStr != "" {
		if readTimeout, err := time.ParseDuration(readTimeoutStr); err == nil {
			config.ReadTimeout = readTimeout
		}
	}

	return config
}
