// Package store handles SQLite persistence of user-defined word groups.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/trickywords/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrGroupNotFound is returned when a named group is not stored.
var ErrGroupNotFound = errors.New("group not found")

// Store wraps SQLite access for custom groups.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS word_groups (
			name TEXT PRIMARY KEY,
			background TEXT NOT NULL,
			foreground TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS group_words (
			group_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (group_name, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_word_groups_created_at ON word_groups(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveGroup inserts a group or replaces the colors and words of an existing one.
func (s *Store) SaveGroup(ctx context.Context, group model.WordGroup) (err error) {
	if group.Name == "" {
		return fmt.Errorf("group name is empty")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO word_groups (name, background, foreground, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET background = excluded.background, foreground = excluded.foreground`,
		group.Name,
		group.Color.Background,
		group.Color.Foreground,
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM group_words WHERE group_name = ?`, group.Name); err != nil {
		return err
	}

	if len(group.Words) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO group_words (group_name, position, word) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, word := range group.Words {
			if _, err = stmt.ExecContext(ctx, group.Name, i, word); err != nil {
				return err
			}
		}
	}

	err = tx.Commit()
	return err
}

// DeleteGroup removes a group and its words.
func (s *Store) DeleteGroup(ctx context.Context, name string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM word_groups WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = fmt.Errorf("%w: %q", ErrGroupNotFound, name)
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM group_words WHERE group_name = ?`, name); err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// ListGroups returns stored groups in creation order with words in position order.
func (s *Store) ListGroups(ctx context.Context) ([]model.WordGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, background, foreground FROM word_groups ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	var groups []model.WordGroup
	index := map[string]int{}
	for rows.Next() {
		var g model.WordGroup
		if err := rows.Scan(&g.Name, &g.Color.Background, &g.Color.Foreground); err != nil {
			_ = rows.Close()
			return nil, err
		}
		index[g.Name] = len(groups)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}

	wordRows, err := s.db.QueryContext(ctx,
		`SELECT group_name, word FROM group_words ORDER BY group_name, position`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := wordRows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for wordRows.Next() {
		var name, word string
		if err := wordRows.Scan(&name, &word); err != nil {
			return nil, err
		}
		idx, ok := index[name]
		if !ok {
			continue
		}
		groups[idx].Words = append(groups[idx].Words, word)
	}
	if err := wordRows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
