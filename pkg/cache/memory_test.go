package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type cachedRecord struct {
	Ticker string  `json:"ticker"`
	Score  float64 `json:"score"`
}

func TestMemorySetGetRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	in := cachedRecord{Ticker: "AAPL", Score: 72.5}
	if err := mc.Set(ctx, "k", in, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out cachedRecord
	if err := mc.Get(ctx, "k", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestMemoryGetMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var out cachedRecord
	if err := mc.Get(context.Background(), "nope", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", cachedRecord{Ticker: "AAPL"}, 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	var out cachedRecord
	if err := mc.Get(ctx, "k", &out); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expired key: err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	mc.Set(ctx, "a", cachedRecord{}, time.Minute)
	mc.Set(ctx, "b", cachedRecord{}, time.Minute)
	if err := mc.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := mc.Exists(ctx, "a", "b"); ok {
		t.Error("deleted keys still exist")
	}
}

func TestMemoryIncrement(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := mc.Increment(ctx, "counter")
		if err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if got != want {
			t.Errorf("Increment = %d, want %d", got, want)
		}
	}
}

func TestMemoryLRUEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	mc.Set(ctx, "old", cachedRecord{}, time.Minute)
	time.Sleep(time.Millisecond)
	mc.Set(ctx, "new", cachedRecord{}, time.Minute)
	time.Sleep(time.Millisecond)
	mc.Set(ctx, "newest", cachedRecord{}, time.Minute)

	if ok, _ := mc.Exists(ctx, "old"); ok {
		t.Error("least recently used key survived eviction")
	}
	if ok, _ := mc.Exists(ctx, "newest"); !ok {
		t.Error("newest key evicted")
	}
}

func TestMemoryTryLock(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	ok, err := mc.TryLock(ctx, "lock", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first TryLock = %v, %v", ok, err)
	}
	if ok, _ := mc.TryLock(ctx, "lock", time.Minute); ok {
		t.Error("second TryLock acquired a held lock")
	}
	if err := mc.Unlock(ctx, "lock"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if ok, _ := mc.TryLock(ctx, "lock", time.Minute); !ok {
		t.Error("TryLock failed after Unlock")
	}
}

func TestGenerateKey(t *testing.T) {
	if got := GenerateKey("company", "AAPL"); got != "company:AAPL" {
		t.Errorf("GenerateKey = %q", got)
	}
	if got := GenerateKeyWithParams("dashboard", "AAPL", 30); got != "dashboard:AAPL:30" {
		t.Errorf("GenerateKeyWithParams = %q", got)
	}
}
