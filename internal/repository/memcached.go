package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/kjstillabower/devtasks/internal/observability"
)

const keyPrefix = "devtasks:"

// MemcachedRepository implements Repository on memcached. It is the real
// remote-backed store the doubles stand in for. Create overwrites on a
// duplicate key (memcached Set semantics).
type MemcachedRepository struct {
	client *memcache.Client
}

// NewMemcachedRepository creates a MemcachedRepository. addrs is a
// comma-separated list (e.g. "localhost:11211" or "host1:11211,host2:11211").
// timeout and maxIdleConns configure the client; both use package defaults
// if zero.
func NewMemcachedRepository(addrs string, timeout time.Duration, maxIdleConns int) (*MemcachedRepository, error) {
	servers := parseAddrs(addrs)
	if len(servers) == 0 {
		servers = []string{"localhost:11211"}
	}
	client := memcache.New(servers...)
	if timeout > 0 {
		client.Timeout = timeout
	}
	if maxIdleConns > 0 {
		client.MaxIdleConns = maxIdleConns
	}
	return &MemcachedRepository{client: client}, nil
}

func parseAddrs(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (r *MemcachedRepository) key(k string) string {
	return keyPrefix + k
}

// Create implements Repository.Create.
func (r *MemcachedRepository) Create(ctx context.Context, key, value string) (err error) {
	start := time.Now()
	defer func() { observability.RecordRepositoryOp("create", err, time.Since(start)) }()

	if err = ctx.Err(); err != nil {
		return err
	}
	return r.client.Set(&memcache.Item{
		Key:   r.key(key),
		Value: []byte(value),
	})
}

// Read implements Repository.Read. A memcached miss maps to ErrKeyNotFound.
func (r *MemcachedRepository) Read(ctx context.Context, key string) (value string, err error) {
	start := time.Now()
	defer func() { observability.RecordRepositoryOp("read", err, time.Since(start)) }()

	if err = ctx.Err(); err != nil {
		return "", err
	}
	item, err := r.client.Get(r.key(key))
	if err != nil {
		if err == memcache.ErrCacheMiss {
			return "", fmt.Errorf("read %q: %w", key, ErrKeyNotFound)
		}
		return "", err
	}
	return string(item.Value), nil
}

// Ping checks if memcached is reachable. Used by integration test setup.
func (r *MemcachedRepository) Ping() error {
	return r.client.Ping()
}

// Close closes the memcached client connections.
func (r *MemcachedRepository) Close() error {
	return r.client.Close()
}
