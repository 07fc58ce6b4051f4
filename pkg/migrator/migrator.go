// Package migrator применяет SQL-миграции из fs.FS и запоминает применённые в таблице schema_migrations.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет миграции по порядку имён файлов
type Migrator struct {
	db     *sql.DB
	files  fs.FS
	logger Logger
}

// New создает мигратор. files должен содержать *.sql в корне.
func New(db *sql.DB, files fs.FS, logger Logger) *Migrator {
	return &Migrator{db: db, files: files, logger: logger}
}

// Up применяет все ещё не применённые миграции, каждую в своей транзакции.
// Возвращает имена применённых файлов.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if _, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	files, err := List(m.files)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, name := range Pending(files, applied) {
		content, err := fs.ReadFile(m.files, name)
		if err != nil {
			return done, fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if err := m.apply(ctx, name, string(content)); err != nil {
			return done, err
		}

		m.logger.Info("Migration applied: %s", name)
		done = append(done, name)
	}

	return done, nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT filename FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan migration filename: %w", err)
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) apply(ctx context.Context, name, content string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, content); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute migration %s: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (filename) VALUES ($1)`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", name, err)
	}
	return nil
}

// List возвращает отсортированные имена *.sql файлов из корня files
func List(files fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Pending оставляет из files только ещё не применённые, сохраняя порядок
func Pending(files []string, applied map[string]bool) []string {
	pending := make([]string, 0, len(files))
	for _, name := range files {
		if !applied[name] {
			pending = append(pending, name)
		}
	}
	return pending
}
