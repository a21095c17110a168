package entry

import (
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *FileRepository {
	t.Helper()

	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "calorie-log.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return repo
}

func TestCreateReturnsEntryFirstInList(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.Create(NewEntry{
		FoodDescription: "chicken salad",
		Calories:        420,
		Protein:         35,
		Carbohydrates:   12,
		Fat:             24,
		EstimatedBy:     EstimatedByAI,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == "" {
		t.Fatal("id was not assigned")
	}
	if first.Date.IsZero() {
		t.Fatal("date was not assigned")
	}

	second, err := repo.Create(NewEntry{
		FoodDescription: "banana",
		Calories:        105,
		EstimatedBy:     EstimatedByUser,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Error("most recently created entry should be listed first")
	}
	if entries[1].FoodDescription != "chicken salad" || entries[1].Calories != 420 {
		t.Errorf("original data was changed: %+v", entries[1])
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Create(NewEntry{FoodDescription: "toast", Calories: 150, EstimatedBy: EstimatedByUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete("no-such-id"); err != nil {
		t.Fatalf("deleting an unknown id should be a no-op, got: %v", err)
	}

	entries, _ := repo.List()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("second delete of the same id should be a no-op, got: %v", err)
	}

	entries, _ = repo.List()
	if len(entries) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(entries))
	}
}

func TestUpdateReplacesMatchingEntry(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Create(NewEntry{FoodDescription: "pasta", Calories: 600, EstimatedBy: EstimatedByAI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := *created
	updated.Calories = 750
	updated.FoodDescription = "pasta with extra cheese"

	if err := repo.Update(updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, _ := repo.List()
	if entries[0].Calories != 750 || entries[0].FoodDescription != "pasta with extra cheese" {
		t.Errorf("entry was not replaced: %+v", entries[0])
	}

	// Unknown id is a no-op, same policy as delete.
	ghost := updated
	ghost.ID = "no-such-id"
	if err := repo.Update(ghost); err != nil {
		t.Fatalf("updating an unknown id should be a no-op, got: %v", err)
	}
	entries, _ = repo.List()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestWritesAreDurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calorie-log.json")

	repo, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := repo.Create(NewEntry{FoodDescription: "omelette", Calories: 300, EstimatedBy: EstimatedByUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := reopened.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != created.ID {
		t.Fatalf("persisted log was not reloaded: %+v", entries)
	}
}

func TestEmptyLogListsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(entries))
	}
}
