// Package preferences persists the portal's single user preference: whether
// ambient background effects are enabled.
package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// BackgroundEffectsKey is the fixed storage key of the flag
const BackgroundEffectsKey = "backgroundEffects"

// DefaultPath returns ~/.giraffecloud-portal/preferences.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".giraffecloud-portal", "preferences.json"), nil
}

// Store reads the preference once on Load and writes it on every change.
// Unknown keys in the file are preserved.
type Store struct {
	path string

	mu                sync.Mutex
	backgroundEffects bool
	extra             map[string]json.RawMessage
}

// Load reads the preferences file at path. A missing file yields defaults.
// An empty path means DefaultPath; a leading "~/" is expanded to the home directory.
func Load(path string) (*Store, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	s := &Store{
		path:              path,
		backgroundEffects: true,
		extra:             map[string]json.RawMessage{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	if err := json.Unmarshal(data, &s.extra); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	if raw, ok := s.extra[BackgroundEffectsKey]; ok {
		var enabled bool
		if err := json.Unmarshal(raw, &enabled); err != nil {
			return nil, fmt.Errorf("invalid %s value %s: %w", BackgroundEffectsKey, string(raw), err)
		}
		s.backgroundEffects = enabled
		delete(s.extra, BackgroundEffectsKey)
	}
	if s.extra == nil {
		s.extra = map[string]json.RawMessage{}
	}

	return s, nil
}

// Path returns the file location
func (s *Store) Path() string {
	return s.path
}

// BackgroundEffects reports whether background effects are enabled
func (s *Store) BackgroundEffects() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backgroundEffects
}

// SetBackgroundEffects updates and persists the flag
func (s *Store) SetBackgroundEffects(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.backgroundEffects
	s.backgroundEffects = enabled
	if err := s.saveLocked(); err != nil {
		s.backgroundEffects = prev
		return err
	}
	return nil
}

// ToggleBackgroundEffects flips and persists the flag, returning the new value
func (s *Store) ToggleBackgroundEffects() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backgroundEffects = !s.backgroundEffects
	if err := s.saveLocked(); err != nil {
		s.backgroundEffects = !s.backgroundEffects
		return s.backgroundEffects, err
	}
	return s.backgroundEffects, nil
}

func (s *Store) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	out := make(map[string]any, len(s.extra)+1)
	for k, v := range s.extra {
		out[k] = v
	}
	out[BackgroundEffectsKey] = s.backgroundEffects

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}
