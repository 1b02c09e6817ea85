// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/lucky-picker/cliparse"
	"github.com/danielhkuo/lucky-picker/db"
)

// exerciseStore runs the contract every backend must satisfy
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Missing key
	v, found, err := s.Get(ctx, "savedOptions")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found || v != nil {
		t.Fatalf("expected missing key, got found=%v value=%q", found, v)
	}

	// Insert
	if err := s.Set(ctx, "savedOptions", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, found, err = s.Get(ctx, "savedOptions")
	if err != nil || !found {
		t.Fatalf("Get() after Set: found=%v err=%v", found, err)
	}
	if string(v) != `[{"id":"a"}]` {
		t.Errorf("Get() = %q", v)
	}

	// Overwrite
	if err := s.Set(ctx, "savedOptions", []byte(`[]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	v, _, _ = s.Get(ctx, "savedOptions")
	if string(v) != `[]` {
		t.Errorf("expected overwritten value, got %q", v)
	}

	// Independent slots
	if err := s.Set(ctx, "savedHistory", []byte(`[1]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, _, _ = s.Get(ctx, "savedOptions")
	if string(v) != `[]` {
		t.Errorf("slots interfere: %q", v)
	}

	// Delete, including a missing key
	if err := s.Delete(ctx, "savedOptions"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "never-set"); err != nil {
		t.Fatalf("Delete() of missing key error = %v", err)
	}
	if _, found, _ := s.Get(ctx, "savedOptions"); found {
		t.Error("expected key to be deleted")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("abc")
	s.Set(ctx, "k", buf)
	buf[0] = 'z'

	v, _, _ := s.Get(ctx, "k")
	if string(v) != "abc" {
		t.Errorf("stored value aliased caller buffer: %q", v)
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(ctx, "k", []byte("v"))
			s.Get(ctx, "k")
		}()
	}
	wg.Wait()
}

func TestSQLStore(t *testing.T) {
	conn, err := db.Open(cliparse.Config{
		DatabaseType: cliparse.TypeSQLite,
		DatabaseURL:  "file::memory:",
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer conn.Close()

	exerciseStore(t, NewSQLStore(conn))
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	defer rdb.Close()

	prefix := "luckypicker-test:" + t.Name() + ":"
	exerciseStore(t, NewRedisStore(rdb, prefix))
}

func TestOpen_Memory(t *testing.T) {
	s, closeFn, err := Open(context.Background(), cliparse.Config{DatabaseType: cliparse.TypeMemory})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer closeFn()

	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", s)
	}
}

func TestOpen_InvalidRedisURL(t *testing.T) {
	_, _, err := Open(context.Background(), cliparse.Config{
		DatabaseType: cliparse.TypeRedis,
		DatabaseURL:  "not a url",
	})
	if err == nil {
		t.Error("expected error for invalid redis url")
	}
}
