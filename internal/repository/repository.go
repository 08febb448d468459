package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kjstillabower/devtasks/internal/observability"
)

// ErrKeyNotFound is returned by Read when a stateful implementation holds no
// record for the key. Doubles that ignore state never return it.
var ErrKeyNotFound = errors.New("repository: key not found")

// Repository is the key-value capability. Create stores a record; whether a
// duplicate key overwrites or fails is implementation-defined and documented
// per type. Read returns the stored value or ErrKeyNotFound.
type Repository interface {
	Create(ctx context.Context, key, value string) error
	Read(ctx context.Context, key string) (string, error)
}

// SimulatedRepository is an in-memory Repository where every operation incurs
// a fixed delay standing in for a remote round trip. It exists to make the
// cost of testing against real infrastructure tangible; the fake in
// doubles.go is the same store without the wait. Create overwrites on a
// duplicate key. Not safe for concurrent use.
type SimulatedRepository struct {
	delay time.Duration
	data  map[string]string
}

// NewSimulatedRepository creates a SimulatedRepository with the given per-op
// delay. A non-positive delay falls back to 100ms.
func NewSimulatedRepository(delay time.Duration) *SimulatedRepository {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	return &SimulatedRepository{
		delay: delay,
		data:  make(map[string]string),
	}
}

// Create stores value under key after the simulated round trip, overwriting
// any existing record.
func (r *SimulatedRepository) Create(ctx context.Context, key, value string) (err error) {
	start := time.Now()
	defer func() { observability.RecordRepositoryOp("create", err, time.Since(start)) }()

	if err = r.roundTrip(ctx); err != nil {
		return err
	}
	r.data[key] = value
	return nil
}

// Read returns the value stored under key after the simulated round trip, or
// ErrKeyNotFound.
func (r *SimulatedRepository) Read(ctx context.Context, key string) (value string, err error) {
	start := time.Now()
	defer func() { observability.RecordRepositoryOp("read", err, time.Since(start)) }()

	if err = r.roundTrip(ctx); err != nil {
		return "", err
	}
	v, ok := r.data[key]
	if !ok {
		return "", fmt.Errorf("read %q: %w", key, ErrKeyNotFound)
	}
	return v, nil
}

// roundTrip blocks for the configured delay or until ctx is cancelled.
func (r *SimulatedRepository) roundTrip(ctx context.Context) error {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetAndParseValue reads one record and parses it as an integer. It is the
// smallest realistic consumer of the capability: read from infrastructure,
// apply a trivial transformation, return the result.
func GetAndParseValue(ctx context.Context, repo Repository, key string) (int, error) {
	value, err := repo.Read(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse value for %q: %w", key, err)
	}
	return n, nil
}

// ReadParseSum reads every key, parses each value as an integer, and returns
// the sum.
func ReadParseSum(ctx context.Context, repo Repository, keys []string) (int, error) {
	total := 0
	for _, key := range keys {
		n, err := GetAndParseValue(ctx, repo, key)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// SumAndStoreTotal reads every key, sums the parsed values, and stores the
// result under "total". The interesting property is the interaction pattern:
// exactly one Create, after all the Reads.
func SumAndStoreTotal(ctx context.Context, repo Repository, keys []string) error {
	total, err := ReadParseSum(ctx, repo, keys)
	if err != nil {
		return err
	}
	return repo.Create(ctx, "total", strconv.Itoa(total))
}
