package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/partbench/partbench/pkg/craftio"
)

// keyPrefix namespaces craft keys in a shared redis instance.
const keyPrefix = "partbench:craft:"

// RedisConfig configures the redis-backed craft store.
type RedisConfig struct {
	Addr     string // host:port
	Password string // optional
	DB       int    // redis database number
}

// Redis is a redis-backed craft store for server deployments. Documents are
// stored as BSON values under namespaced keys, with no expiration.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client}, nil
}

// Close releases the underlying redis connection pool.
func (r *Redis) Close() error { return r.client.Close() }

// Get retrieves a craft document by ID.
func (r *Redis) Get(ctx context.Context, id string) (*craftio.Document, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return decodeDocument(data)
}

// Put stores a craft document, assigning a UUID if it has none.
func (r *Redis) Put(ctx context.Context, doc *craftio.Document) (string, error) {
	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	data, err := encodeDocument(doc, id)
	if err != nil {
		return "", err
	}
	if err := r.client.Set(ctx, keyPrefix+id, data, 0).Err(); err != nil {
		return "", fmt.Errorf("redis set: %w", err)
	}
	return id, nil
}

// Delete removes a craft document.
func (r *Redis) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the IDs of all stored craft documents.
// Uses SCAN rather than KEYS so large instances aren't blocked.
func (r *Redis) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(keyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return ids, nil
}
