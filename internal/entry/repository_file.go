package entry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileRepository persists the calorie log as a single JSON file. Every
// mutation rewrites the whole record before returning, so a read
// immediately after a write always reflects it.
type FileRepository struct {
	path string
	mu   sync.Mutex

	// entries is the authoritative in-memory view, newest first.
	entries []LogEntry
}

func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	repo := &FileRepository{path: path}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.entries = []LogEntry{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read calorie log: %w", err)
	}

	var entries []LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse calorie log: %w", err)
	}
	r.entries = entries
	return nil
}

func (r *FileRepository) save() error {
	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write calorie log: %w", err)
	}
	return nil
}

// Create assigns id and creation time and prepends the entry so List
// stays reverse-chronological by creation.
func (r *FileRepository) Create(input NewEntry) (*LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newEntry := LogEntry{
		ID:              uuid.NewString(),
		Date:            time.Now(),
		FoodDescription: input.FoodDescription,
		Calories:        input.Calories,
		Protein:         input.Protein,
		Carbohydrates:   input.Carbohydrates,
		Fat:             input.Fat,
		ImageURL:        input.ImageURL,
		EstimatedBy:     input.EstimatedBy,
	}

	r.entries = append([]LogEntry{newEntry}, r.entries...)

	if err := r.save(); err != nil {
		// Roll the in-memory view back so it never runs ahead of disk.
		r.entries = r.entries[1:]
		return nil, err
	}

	return &newEntry, nil
}

// Delete removes the entry with the given id. Unknown ids are a no-op.
func (r *FileRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return r.save()
		}
	}
	return nil
}

// Update replaces the entry matching the id. Unknown ids are a no-op,
// same policy as Delete.
func (r *FileRepository) Update(updated LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == updated.ID {
			r.entries[i] = updated
			return r.save()
		}
	}
	return nil
}

// List returns a copy of the log, most recently created entry first.
func (r *FileRepository) List() ([]LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
