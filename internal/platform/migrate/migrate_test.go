package migrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestExtractUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id INT);", want: "CREATE TABLE a(id INT);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id INT);", want: "\nCREATE TABLE a(id INT);"},
		{
			name:    "up and down",
			content: "-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;",
			want:    "\nCREATE TABLE a(id INT);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractUp(tt.content); got != tt.want {
				t.Errorf("ExtractUp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFiles_SortsAndSkipsBlank(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"0002_b.sql":   {Data: []byte("CREATE TABLE b(id INT);")},
		"0001_a.sql":   {Data: []byte("CREATE TABLE a(id INT);")},
		"0003_c.sql":   {Data: []byte("-- +migrate Up\n\n-- +migrate Down\nDROP TABLE c;")},
		"README.md":    {Data: []byte("not sql")},
		"nested/x.sql": {Data: []byte("CREATE TABLE x(id INT);")},
	}

	files, err := Files(fsys)
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(Files()) = %d, want 2", len(files))
	}
	if files[0].Name != "0001_a.sql" || files[1].Name != "0002_b.sql" {
		t.Errorf("Files() order = [%s %s], want [0001_a.sql 0002_b.sql]", files[0].Name, files[1].Name)
	}
}

func TestApplySQL_RecordsOnce(t *testing.T) {
	t.Parallel()
	db := openTempDB(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"0001_items.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE items(id INTEGER PRIMARY KEY);")},
	}

	for range 2 {
		if err := ApplySQL(ctx, db, fsys); err != nil {
			t.Fatalf("ApplySQL() error = %v", err)
		}
	}

	if got := count(t, db, "SELECT COUNT(*) FROM "+Table); got != 1 {
		t.Errorf("recorded migrations = %d, want 1", got)
	}
	if got := count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='items'"); got != 1 {
		t.Error("items table was not created")
	}
}

func TestApplySQL_FailedMigrationNotRecorded(t *testing.T) {
	t.Parallel()
	db := openTempDB(t)
	ctx := context.Background()

	bad := fstest.MapFS{"0001_bad.sql": {Data: []byte("CREAT TABLE things(id INT);")}}
	if err := ApplySQL(ctx, db, bad); err == nil {
		t.Fatal("ApplySQL() with invalid SQL should fail")
	}
	if got := count(t, db, "SELECT COUNT(*) FROM "+Table); got != 0 {
		t.Fatalf("recorded migrations = %d, want 0", got)
	}

	good := fstest.MapFS{"0001_bad.sql": {Data: []byte("CREATE TABLE things(id INTEGER PRIMARY KEY);")}}
	if err := ApplySQL(ctx, db, good); err != nil {
		t.Fatalf("ApplySQL() after fix error = %v", err)
	}
	if got := count(t, db, "SELECT COUNT(*) FROM "+Table); got != 1 {
		t.Errorf("recorded migrations = %d, want 1", got)
	}
}

func TestApplySQL_NilDB(t *testing.T) {
	t.Parallel()
	if err := ApplySQL(context.Background(), nil, fstest.MapFS{}); err == nil {
		t.Error("ApplySQL(nil) should fail")
	}
}

func openTempDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}
