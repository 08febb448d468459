package repository

import (
	"context"
	"errors"
	"testing"
	"time"
)

// testDelay keeps the simulated round trip short enough for the suite while
// staying observable in the latency test below.
const testDelay = 2 * time.Millisecond

func TestSimulatedRepository_CreateThenRead(t *testing.T) {
	ctx := context.Background()
	repo := NewSimulatedRepository(testDelay)

	if err := repo.Create(ctx, "greeting", "hello"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.Read(ctx, "greeting")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Read() = %q, want %q", got, "hello")
	}
}

func TestSimulatedRepository_ReadMissingKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSimulatedRepository(testDelay)

	_, err := repo.Read(ctx, "absent")

	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Read() error = %v, want ErrKeyNotFound", err)
	}
}

// TestSimulatedRepository_RepeatedCreateIsIdempotent verifies a duplicate
// Create with the same pair leaves Read unchanged, and a different value
// overwrites.
func TestSimulatedRepository_RepeatedCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSimulatedRepository(testDelay)

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, "k", "v"); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	got, err := repo.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "v" {
		t.Errorf("Read() after repeated Create = %q, want %q", got, "v")
	}

	if err := repo.Create(ctx, "k", "v2"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	got, err = repo.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "v2" {
		t.Errorf("Read() after overwrite = %q, want %q", got, "v2")
	}
}

// TestSimulatedRepository_IncursRoundTripDelay pins the point of this type:
// each operation pays the simulated remote cost. Skipped under -short, which
// is exactly the situation the fake exists for.
func TestSimulatedRepository_IncursRoundTripDelay(t *testing.T) {
	if testing.Short() {
		t.Skip("simulated latency test, use FakeRepository in short mode")
	}
	ctx := context.Background()
	delay := 50 * time.Millisecond
	repo := NewSimulatedRepository(delay)

	start := time.Now()
	if err := repo.Create(ctx, "k", "v"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	elapsed := time.Since(start)

	if elapsed < delay {
		t.Errorf("Create() took %v, want at least %v", elapsed, delay)
	}
}

func TestSimulatedRepository_RespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewSimulatedRepository(time.Minute)

	err := repo.Create(ctx, "k", "v")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Create() error = %v, want context.Canceled", err)
	}

	_, err = repo.Read(ctx, "k")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Read() error = %v, want context.Canceled", err)
	}
}

func TestNewSimulatedRepository_DefaultsNonPositiveDelay(t *testing.T) {
	repo := NewSimulatedRepository(0)
	if repo.delay <= 0 {
		t.Errorf("delay = %v, want positive default", repo.delay)
	}
}

func TestGetAndParseValue(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRepository()
	if err := repo.Create(ctx, "2", "2"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := GetAndParseValue(ctx, repo, "2")
	if err != nil {
		t.Fatalf("GetAndParseValue() error = %v", err)
	}

	if got != 2 {
		t.Errorf("GetAndParseValue() = %d, want 2", got)
	}
}

func TestGetAndParseValue_FailsOnNonNumericValue(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRepository()
	if err := repo.Create(ctx, "k", "not-a-number"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := GetAndParseValue(ctx, repo, "k")
	if err == nil {
		t.Fatal("GetAndParseValue() expected parse error, got nil")
	}
}

func TestGetAndParseValue_PropagatesMissingKey(t *testing.T) {
	ctx := context.Background()

	_, err := GetAndParseValue(ctx, NewFakeRepository(), "absent")

	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("GetAndParseValue() error = %v, want ErrKeyNotFound", err)
	}
}

func TestReadParseSum(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRepository()
	for key, value := range map[string]string{"a": "1", "b": "2", "c": "3"} {
		if err := repo.Create(ctx, key, value); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := ReadParseSum(ctx, repo, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("ReadParseSum() error = %v", err)
	}

	if got != 6 {
		t.Errorf("ReadParseSum() = %d, want 6", got)
	}
}
