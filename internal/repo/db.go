package repo

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/xxxsen/todolist/internal/pkg/dbutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB carries the driver name alongside the handle so repositories can
// rebind placeholders for the active backend.
type DB struct {
	*sql.DB
	driver string
}

func (d *DB) Driver() string {
	return d.driver
}

func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case dbutil.DriverSQLite:
		if dir := filepath.Dir(dsn); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	case dbutil.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == dbutil.DriverSQLite {
		// single writer keeps modernc sqlite happy under concurrent requests
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &DB{DB: db, driver: driver}, nil
}

func ApplyMigrations(db *DB) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	for _, file := range files {
		content, err := fs.ReadFile(migrationsFS, "migrations/"+file)
		if err != nil {
			return err
		}
		queries := strings.Split(string(content), ";")
		for _, q := range queries {
			q = strings.TrimSpace(q)
			if q == "" {
				continue
			}
			if _, err := db.Exec(q); err != nil {
				if strings.Contains(err.Error(), "already exists") {
					continue
				}
				return fmt.Errorf("execute query in %s: %w", file, err)
			}
		}
	}
	return nil
}
