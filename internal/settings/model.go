package settings

// DefaultDailyCalorieGoal is used wherever a calorie goal is needed
// but the user has not set one. No other field has an implicit default.
const DefaultDailyCalorieGoal = 2000.0

// UserSettings is the single local user's profile and goals. Every
// field is optional; omitted fields stay absent in the persisted JSON.
type UserSettings struct {
	Name          *string  `json:"name,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Weight        *float64 `json:"weight,omitempty"` // kg
	Height        *float64 `json:"height,omitempty"` // cm
	Gender        *string  `json:"gender,omitempty"`
	ActivityLevel *string  `json:"activityLevel,omitempty"`

	DailyCalorieGoal *float64 `json:"dailyCalorieGoal,omitempty"`
	DailyProteinGoal *float64 `json:"dailyProteinGoal,omitempty"`
	DailyCarbsGoal   *float64 `json:"dailyCarbsGoal,omitempty"`
	DailyFatGoal     *float64 `json:"dailyFatGoal,omitempty"`
}

// EffectiveDailyCalorieGoal returns the configured goal or the
// documented default when unset.
func (s UserSettings) EffectiveDailyCalorieGoal() float64 {
	if s.DailyCalorieGoal == nil {
		return DefaultDailyCalorieGoal
	}
	return *s.DailyCalorieGoal
}
