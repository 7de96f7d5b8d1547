package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"datefield-cli/internal/datefield"
)

// WriteValuesJSONL writes a JSONL stream of bound values (one per line).
func WriteValuesJSONL(path string, vs []BoundValue) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for _, v := range vs {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// ReadValuesJSONL reads bound values from a JSONL file. Every value must be
// in the YYYY-MM-DD wire format; the line number of the first bad row is reported.
func ReadValuesJSONL(path string) ([]BoundValue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := []BoundValue{}
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var v BoundValue
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			return nil, fmt.Errorf("parse values jsonl line %d: %w", n, err)
		}
		if _, err := normalizeKey(v.Key); err != nil {
			return nil, fmt.Errorf("values jsonl line %d: %w", n, err)
		}
		if _, ok := datefield.ParseISODate(v.Value); !ok {
			return nil, fmt.Errorf("values jsonl line %d: %w", n, invalidValueError{value: v.Value})
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Import stores every value in one transaction. Existing keys are
// overwritten and each write is recorded in the history.
func (s Store) Import(ctx context.Context, vs []BoundValue) (int, error) {
	for _, v := range vs {
		if _, ok := datefield.ParseISODate(v.Value); !ok {
			return 0, invalidValueError{value: v.Value}
		}
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().UnixMilli()
	for _, v := range vs {
		key, err := normalizeKey(v.Key)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO bound_values(key, value, updated_at_unixms) VALUES(?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at_unixms = excluded.updated_at_unixms;`,
			key, v.Value, now); err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO value_history(key, value, recorded_at_unixms) VALUES(?, ?, ?);`,
			key, v.Value, now); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(vs), nil
}
