package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	tuiStateFileName = "tui_state.json"
	maxRecentKeys    = 10
)

// TUIState stores small picker state between runs. Callers should tolerate
// missing or invalid data.
type TUIState struct {
	Version int `json:"version"`

	// RecentKeys lists keys confirmed in the picker, newest first.
	RecentKeys []string `json:"recentKeys,omitempty"`

	// LastFocus maps a key to the column ("year", "month", "day") that had
	// focus when the picker closed.
	LastFocus map[string]string `json:"lastFocus,omitempty"`
}

// TouchKey moves key to the front of RecentKeys.
func (st *TUIState) TouchKey(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	out := make([]string, 0, len(st.RecentKeys)+1)
	out = append(out, key)
	for _, k := range st.RecentKeys {
		if k != key {
			out = append(out, k)
		}
	}
	if len(out) > maxRecentKeys {
		out = out[:maxRecentKeys]
	}
	st.RecentKeys = out
}

// LastKey returns the most recently picked key.
func (st *TUIState) LastKey() (string, bool) {
	if st == nil || len(st.RecentKeys) == 0 {
		return "", false
	}
	return st.RecentKeys[0], true
}

func (s Store) tuiStatePath() string {
	return filepath.Join(s.Dir, tuiStateFileName)
}

func (s Store) LoadTUIState() (*TUIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &TUIState{Version: 1}, nil
	}
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.tuiStatePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &TUIState{Version: 1}, nil
		}
		return nil, err
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Corrupt state is treated as missing.
		return &TUIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (s Store) SaveTUIState(st *TUIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, "tui_state.json.*.tmp", s.tuiStatePath(), b, 0o644)
}
