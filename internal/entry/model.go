package entry

import "time"

const (
	EstimatedByAI   = "ai"
	EstimatedByUser = "user"
)

// LogEntry is one recorded meal. Entries are immutable except through
// Update and never reference each other.
type LogEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`

	FoodDescription string  `json:"foodDescription"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbohydrates   float64 `json:"carbohydrates"`
	Fat             float64 `json:"fat"`

	// ImageURL is an opaque reference the store never fetches or
	// validates.
	ImageURL *string `json:"imageUrl,omitempty"`

	EstimatedBy string `json:"estimatedBy"` // ai | user
}

// NewEntry is the caller-supplied part of a LogEntry; id and date are
// assigned at creation time.
type NewEntry struct {
	FoodDescription string  `json:"foodDescription"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbohydrates   float64 `json:"carbohydrates"`
	Fat             float64 `json:"fat"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	EstimatedBy     string  `json:"estimatedBy"`
}
