// Package redis persists extraction results in Redis, keyed by message
// name. It doubles as a shared cache so repeated extractions of large
// schemas can be served without re-walking the type graph.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
)

// ErrNotStored is returned by Load when no paths exist for a message.
var ErrNotStored = fmt.Errorf("no stored paths for message")

// Store implements ports.PathSink backed by Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.PathSink = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for stored path lists.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored path lists.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "asnpath:paths:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(message string) string {
	return s.prefix + message
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Write stores the message's paths and registers it in the index.
func (s *Store) Write(ctx context.Context, message string, paths []extract.Path) error {
	data, err := json.Marshal(paths)
	if err != nil {
		return fmt.Errorf("failed to marshal paths: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(message), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), message)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save paths to redis: %w", err)
	}
	return nil
}

// Load retrieves a previously stored path list.
func (s *Store) Load(ctx context.Context, message string) ([]extract.Path, error) {
	val, err := s.client.Get(ctx, s.key(message)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, fmt.Errorf("%w: %s", ErrNotStored, message)
		}
		return nil, fmt.Errorf("failed to get paths from redis: %w", err)
	}

	var paths []extract.Path
	if err := json.Unmarshal([]byte(val), &paths); err != nil {
		return nil, fmt.Errorf("failed to unmarshal paths: %w", err)
	}
	return paths, nil
}

// Delete removes a message's paths and index entry.
func (s *Store) Delete(ctx context.Context, message string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(message))
	pipe.SRem(ctx, s.indexKey(), message)
	_, err := pipe.Exec(ctx)
	return err
}

// Messages lists the messages with stored paths, sorted.
func (s *Store) Messages(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list stored messages: %w", err)
	}
	// Entries can outlive their TTL'd path lists; prune lazily.
	out := members[:0]
	for _, msg := range members {
		exists, err := s.client.Exists(ctx, s.key(msg)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check stored message: %w", err)
		}
		if exists == 0 {
			s.client.SRem(ctx, s.indexKey(), msg)
			continue
		}
		out = append(out, msg)
	}
	sort.Strings(out)
	return out, nil
}
