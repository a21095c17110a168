package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store handles file-based persistence of the settings singleton.
type Store struct {
	path string
	mu   sync.RWMutex
}

func NewStore(path string) *Store {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("Warning: could not create settings dir: %v", err)
	}
	return &Store{path: path}
}

// Get returns the persisted settings, or empty settings when nothing
// has been saved yet or the file is unreadable.
func (s *Store) Get() UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read settings: %v", err)
		}
		return UserSettings{}
	}

	var settings UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: invalid settings JSON: %v", err)
		return UserSettings{}
	}

	return settings
}

// Save rewrites the whole settings record.
func (s *Store) Save(settings UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
