package cache

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisClient(&Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisClient(&Config{Addr: addr}); err == nil {
		t.Error("expected an error for a closed server")
	}
}

func TestLock(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	ok, err := c.AcquireLock(ctx, "lock:a", "token-1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("expected first acquire to succeed, got %v (%v)", ok, err)
	}
	ok, err = c.AcquireLock(ctx, "lock:a", "token-2", time.Minute)
	if err != nil || ok {
		t.Fatalf("expected second acquire to fail, got %v (%v)", ok, err)
	}

	if err := c.ReleaseLock(ctx, "lock:a", "token-2"); err != nil {
		t.Fatalf("ReleaseLock failed: %v", err)
	}
	if !mr.Exists("lock:a") {
		t.Fatal("a foreign token must not release the lock")
	}

	if err := c.ReleaseLock(ctx, "lock:a", "token-1"); err != nil {
		t.Fatalf("ReleaseLock failed: %v", err)
	}
	if mr.Exists("lock:a") {
		t.Error("expected the owner to release the lock")
	}
}

func TestLock_Expires(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	if ok, _ := c.AcquireLock(ctx, "lock:b", "token", 10*time.Second); !ok {
		t.Fatal("expected acquire to succeed")
	}
	mr.FastForward(11 * time.Second)
	if ok, _ := c.AcquireLock(ctx, "lock:b", "other", 10*time.Second); !ok {
		t.Error("expected an expired lock to be free")
	}
}

func TestDeleteByPattern(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	for _, k := range []string{"products:list:a", "products:list:b", "transfer:draft:s1"} {
		if err := mr.Set(k, "x"); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.DeleteByPattern(ctx, "products:list:*"); err != nil {
		t.Fatalf("DeleteByPattern failed: %v", err)
	}
	if keys := mr.Keys(); !slices.Equal(keys, []string{"transfer:draft:s1"}) {
		t.Errorf("expected only the draft key left, got %v", keys)
	}

	if err := c.DeleteByPattern(ctx, "nothing:*"); err != nil {
		t.Errorf("an empty match should not be an error, got %v", err)
	}
}
