package repository

import (
	"context"
	"fmt"
)

// This file is the test-double catalogue for the Repository capability. The
// types are exported on purpose: they are the teaching material, not private
// test plumbing. Pick by intent:
//
//	Dummy: satisfies a parameter list, never exercised
//	Fake:  real simplified behavior, no latency
//	Stub:  canned response, ignores state
//	Spy:   records interactions, answers like a stub

// DummyRepository satisfies the Repository signature but does nothing. Use it
// when a dependency must be passed and is never exercised. Needing one is
// often a hint the code under test has more than one responsibility.
type DummyRepository struct{}

func (DummyRepository) Create(ctx context.Context, key, value string) error { return nil }

func (DummyRepository) Read(ctx context.Context, key string) (string, error) { return "", nil }

// FakeRepository is the SimulatedRepository minus the round-trip delay: a
// working in-memory implementation suitable for fast correctness tests.
// Create overwrites on a duplicate key, matching the real implementations.
type FakeRepository struct {
	data map[string]string
}

// NewFakeRepository creates an empty FakeRepository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{data: make(map[string]string)}
}

func (f *FakeRepository) Create(ctx context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func (f *FakeRepository) Read(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", fmt.Errorf("read %q: %w", key, ErrKeyNotFound)
	}
	return v, nil
}

// StubRepository answers every Read with the fixed Value and ignores Create
// entirely. Use it to make a dependent computation deterministic, including
// simulating edge cases the real store would rarely produce.
type StubRepository struct {
	Value string
}

func (StubRepository) Create(ctx context.Context, key, value string) error { return nil }

func (s StubRepository) Read(ctx context.Context, key string) (string, error) {
	return s.Value, nil
}

// CreateCall is one recorded Create invocation.
type CreateCall struct {
	Key   string
	Value string
}

// SpyRepository records every call for later assertion and answers Read with
// the fixed Value like a stub. Counts and argument lists are plain fields;
// arguments appear in call order. The zero value is ready to use.
type SpyRepository struct {
	Value string

	CreateCallCount int
	CreateCallArgs  []CreateCall
	ReadCallCount   int
	ReadCallArgs    []string
}

func (s *SpyRepository) Create(ctx context.Context, key, value string) error {
	s.CreateCallCount++
	s.CreateCallArgs = append(s.CreateCallArgs, CreateCall{Key: key, Value: value})
	return nil
}

func (s *SpyRepository) Read(ctx context.Context, key string) (string, error) {
	s.ReadCallCount++
	s.ReadCallArgs = append(s.ReadCallArgs, key)
	return s.Value, nil
}
