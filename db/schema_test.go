// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"

	"github.com/danielhkuo/lucky-picker/cliparse"
)

func TestOpen_SQLiteFile(t *testing.T) {
	cfg := cliparse.Config{
		DatabaseType: cliparse.TypeSQLite,
		DatabaseURL:  "file:" + filepath.Join(t.TempDir(), "test.db"),
	}

	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	// Schema creation must be idempotent
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("second CreateSchema() error = %v", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM kv_entry").Scan(&count); err != nil {
		t.Fatalf("kv_entry not created: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}
}

func TestOpen_RejectsNonSQLTypes(t *testing.T) {
	for _, typ := range []string{cliparse.TypeRedis, cliparse.TypeMemory, "mongo"} {
		t.Run(typ, func(t *testing.T) {
			if _, err := Open(cliparse.Config{DatabaseType: typ, DatabaseURL: "x"}); err == nil {
				t.Errorf("expected error for %s", typ)
			}
		})
	}
}
