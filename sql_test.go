package riemann_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/govalues/riemann"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestComplex_SQLite(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`CREATE TABLE points (id INTEGER PRIMARY KEY, z TEXT NOT NULL, w TEXT)`)
	if err != nil {
		t.Fatalf("db.Exec(CREATE TABLE) failed: %v", err)
	}

	tests := []struct {
		z riemann.Complex
		w riemann.NullComplex
	}{
		{riemann.MustParse("3 + 4i"), riemann.NullComplex{}},
		{riemann.MustParse("-i"), riemann.NullComplex{Complex: riemann.One, Valid: true}},
		{riemann.New(1.1999800719976027e-7, -511.9999999999995), riemann.NullComplex{Complex: riemann.Inf, Valid: true}},
		{riemann.NaN, riemann.NullComplex{Complex: riemann.Zero, Valid: true}},
	}
	for i, tt := range tests {
		_, err := db.Exec(`INSERT INTO points (id, z, w) VALUES (?, ?, ?)`, i, tt.z, tt.w)
		if err != nil {
			t.Fatalf("db.Exec(INSERT %q, %v) failed: %v", tt.z, tt.w, err)
		}
	}

	for i, tt := range tests {
		var z riemann.Complex
		var w riemann.NullComplex
		err := db.QueryRow(`SELECT z, w FROM points WHERE id = ?`, i).Scan(&z, &w)
		if err != nil {
			t.Errorf("db.QueryRow(%v).Scan() failed: %v", i, err)
			continue
		}
		if z.String() != tt.z.String() {
			t.Errorf("db.QueryRow(%v).Scan() z = %q, want %q", i, z, tt.z)
		}
		if w.Valid != tt.w.Valid || w.Complex.String() != tt.w.Complex.String() {
			t.Errorf("db.QueryRow(%v).Scan() w = %v, want %v", i, w, tt.w)
		}
	}

	t.Run("numeric columns", func(t *testing.T) {
		var f, n riemann.Complex
		err := db.QueryRow(`SELECT 2.5, 7`).Scan(&f, &n)
		if err != nil {
			t.Fatalf("db.QueryRow(SELECT 2.5, 7).Scan() failed: %v", err)
		}
		if f.String() != "2.5" {
			t.Errorf("Scan(2.5) = %q, want %q", f, "2.5")
		}
		if n.String() != "7" {
			t.Errorf("Scan(7) = %q, want %q", n, "7")
		}
	})

	t.Run("invalid text", func(t *testing.T) {
		var z riemann.Complex
		err := db.QueryRow(`SELECT '4 5i'`).Scan(&z)
		if err == nil {
			t.Errorf("Scan('4 5i') did not fail")
		}
	})
}
