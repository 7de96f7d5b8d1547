package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"datefield-cli/internal/datefield"
)

// BoundValue is the stored ISO date for a field key.
type BoundValue struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryEntry records one change of a key. A nil Value means the key was deleted.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	Key        string    `json:"key"`
	Value      *string   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

type invalidValueError struct {
	value string
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("invalid date value %q (expected YYYY-MM-DD)", e.value)
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("value key is empty")
	}
	return key, nil
}

// Get returns the stored value for key. ok is false when nothing is stored.
func (s Store) Get(ctx context.Context, key string) (v BoundValue, ok bool, err error) {
	key, err = normalizeKey(key)
	if err != nil {
		return BoundValue{}, false, err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return BoundValue{}, false, err
	}
	defer db.Close()

	var ms int64
	row := db.QueryRowContext(ctx, `SELECT key, value, updated_at_unixms FROM bound_values WHERE key = ?;`, key)
	if err := row.Scan(&v.Key, &v.Value, &ms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BoundValue{}, false, nil
		}
		return BoundValue{}, false, err
	}
	v.UpdatedAt = time.UnixMilli(ms).UTC()
	return v, true, nil
}

// Put stores value under key. Only the YYYY-MM-DD wire format is accepted.
func (s Store) Put(ctx context.Context, key, value string) (BoundValue, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return BoundValue{}, err
	}
	if _, ok := datefield.ParseISODate(value); !ok {
		return BoundValue{}, invalidValueError{value: value}
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return BoundValue{}, err
	}
	defer db.Close()

	now := time.Now().UTC()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return BoundValue{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO bound_values(key, value, updated_at_unixms) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at_unixms = excluded.updated_at_unixms;`,
		key, value, now.UnixMilli()); err != nil {
		return BoundValue{}, err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO value_history(key, value, recorded_at_unixms) VALUES(?, ?, ?);`,
		key, value, now.UnixMilli()); err != nil {
		return BoundValue{}, err
	}
	if err := tx.Commit(); err != nil {
		return BoundValue{}, err
	}
	return BoundValue{Key: key, Value: value, UpdatedAt: time.UnixMilli(now.UnixMilli()).UTC()}, nil
}

// Delete removes key. It reports whether anything was stored.
func (s Store) Delete(ctx context.Context, key string) (bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return false, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM bound_values WHERE key = ?;`, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO value_history(key, value, recorded_at_unixms) VALUES(?, NULL, ?);`,
		key, time.Now().UTC().UnixMilli()); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// List returns all stored values ordered by key.
func (s Store) List(ctx context.Context) ([]BoundValue, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT key, value, updated_at_unixms FROM bound_values ORDER BY key ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BoundValue{}
	for rows.Next() {
		var v BoundValue
		var ms int64
		if err := rows.Scan(&v.Key, &v.Value, &ms); err != nil {
			return nil, err
		}
		v.UpdatedAt = time.UnixMilli(ms).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// History returns the changes recorded for key, newest first. limit <= 0 means all.
func (s Store) History(ctx context.Context, key string, limit int) ([]HistoryEntry, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, key, value, recorded_at_unixms FROM value_history WHERE key = ? ORDER BY id DESC`
	args := []any{key}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, q+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryEntry{}
	for rows.Next() {
		var h HistoryEntry
		var v sql.NullString
		var ms int64
		if err := rows.Scan(&h.ID, &h.Key, &v, &ms); err != nil {
			return nil, err
		}
		if v.Valid {
			val := v.String
			h.Value = &val
		}
		h.RecordedAt = time.UnixMilli(ms).UTC()
		out = append(out, h)
	}
	return out, rows.Err()
}
