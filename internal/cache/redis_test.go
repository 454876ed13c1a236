package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, "fleet:", 15*time.Minute)
	result := computed(t, 10)

	if _, ok, err := store.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("Get() on empty store = %v, %v", ok, err)
	}

	if err := store.Set(ctx, "k", result); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := client.data["fleet:k"]; !ok {
		t.Fatalf("expected prefixed key, have %v", client.data)
	}
	if client.ttls["fleet:k"] != 15*time.Minute {
		t.Errorf("ttl = %v, expected 15m", client.ttls["fleet:k"])
	}

	got, ok, err := store.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if got.Parameters != result.Parameters {
		t.Errorf("Parameters = %+v, expected %+v", got.Parameters, result.Parameters)
	}
	if len(got.Schedule) != len(result.Schedule) {
		t.Fatalf("schedule length = %d, expected %d", len(got.Schedule), len(result.Schedule))
	}
	for i := range result.Schedule {
		if got.Schedule[i] != result.Schedule[i] {
			t.Fatalf("record %d = %+v, expected %+v", i, got.Schedule[i], result.Schedule[i])
		}
	}
	if got.Summary != result.Summary {
		t.Errorf("Summary = %+v, expected %+v", got.Summary, result.Summary)
	}
}

func TestRedisStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	client := newFakeRedis()
	client.getErr = boom
	client.setErr = boom
	store := NewRedisStore(client, "", 0)

	if _, _, err := store.Get(ctx, "k"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, expected %v", err, boom)
	}
	if err := store.Set(ctx, "k", computed(t, 1)); !errors.Is(err, boom) {
		t.Errorf("Set() error = %v, expected %v", err, boom)
	}

	corrupt := newFakeRedis()
	corrupt.data["k"] = "{not json"
	if _, ok, err := NewRedisStore(corrupt, "", 0).Get(ctx, "k"); err == nil || ok {
		t.Errorf("Get() of corrupt entry = %v, %v, expected an error", ok, err)
	}
}
