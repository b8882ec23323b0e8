package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.GetItem(ctx, "hasOnboarded"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.SetItem(ctx, "hasOnboarded", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := store.GetItem(ctx, "hasOnboarded")
	if err != nil || !ok || value != "true" {
		t.Fatalf("expected stored value true, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "bumpti:")
	exerciseStore(t, store)

	if got, _ := mr.Get("bumpti:hasOnboarded"); got != "true" {
		t.Fatalf("expected prefixed key in redis, got %q", got)
	}
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not-a-url"); err == nil {
		t.Fatalf("expected error for invalid redis url")
	}
}
