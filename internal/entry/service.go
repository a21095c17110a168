package entry

import (
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input and appends it to the log. Omitted macros
// arrive as zero values, which is what manual entries want.
func (s *Service) Create(input NewEntry) (*LogEntry, error) {
	if input.FoodDescription == "" {
		return nil, errors.New("foodDescription is required")
	}
	if input.Calories < 0 || input.Protein < 0 || input.Carbohydrates < 0 || input.Fat < 0 {
		return nil, errors.New("nutritional values cannot be negative")
	}

	switch input.EstimatedBy {
	case EstimatedByAI, EstimatedByUser:
	case "":
		input.EstimatedBy = EstimatedByUser
	default:
		return nil, errors.New("estimatedBy must be 'ai' or 'user'")
	}

	return s.repo.Create(input)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) Update(updated LogEntry) error {
	if updated.ID == "" {
		return errors.New("id is required")
	}
	if updated.Calories < 0 || updated.Protein < 0 || updated.Carbohydrates < 0 || updated.Fat < 0 {
		return errors.New("nutritional values cannot be negative")
	}
	return s.repo.Update(updated)
}

func (s *Service) List() ([]LogEntry, error) {
	return s.repo.List()
}
