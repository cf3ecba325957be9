package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"drink-coffee/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is the durable key-value mirror the ordering service writes its
// session and favorites snapshots to. Values are opaque byte slices; the
// callers own the encoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default connection settings
const (
	DefaultDialTimeout = 5 * time.Second
	DefaultReadTimeout = 3 * time.Second
	DefaultKeyPrefix   = "drinkcoffee:"
)

type Config struct {
	Addr     string
	Password string
	DB       int

	DialTimeout time.Duration
	ReadTimeout time.Duration
	KeyPrefix   string
}

// DefaultConfig returns a key-value store configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Addr:        "localhost:6379",
		Password:    "",
		DB:          0,
		DialTimeout: DefaultDialTimeout,
		ReadTimeout: DefaultReadTimeout,
		KeyPrefix:   DefaultKeyPrefix,
	}
}

// RedisStore is a Store backed by a Redis instance.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(config Config, log *logger.Logger) (*RedisStore, error) {
	log.Info("Connecting to key-value store",
		"addr", config.Addr,
		"db", config.DB,
		"key_prefix", config.KeyPrefix)

	dialTimeout := config.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = DefaultDialTimeout
	}
	readTimeout := config.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        config.Addr,
		Password:    config.Password,
		DB:          config.DB,
		DialTimeout: dialTimeout,
		ReadTimeout: readTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		log.Error("Failed to ping key-value store", "error", err)
		return nil, fmt.Errorf("failed to ping key-value store: %w", err)
	}

	log.Info("Key-value store connection established", "addr", config.Addr)

	return &RedisStore{
		client: client,
		prefix: config.KeyPrefix,
		logger: log,
	}, nil
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

// Get retrieves the value stored under key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key with no expiry
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		s.logger.Error("Failed to write key", "key", key, "error", err)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.logger.Error("Failed to delete key", "key", key, "error", err)
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// HealthCheck verifies the store is reachable
func (s *RedisStore) HealthCheck() error {
	s.logger.Debug("Performing key-value store health check")

	ctx, cancel := context.WithTimeout(context.Background(), DefaultReadTimeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		s.logger.Error("Key-value store health check failed", "error", err)
		return fmt.Errorf("key-value store ping failed: %w", err)
	}

	s.logger.Debug("Key-value store health check passed")
	return nil
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	s.logger.Info("Closing key-value store connection")
	return s.client.Close()
}

// MemoryStore is an in-process Store used when no Redis instance is
// reachable. Mirrored state then lasts only for the process lifetime,
// which keeps the service usable without the external collaborator.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
