package inference

// MacroNutrients are estimated grams per macro.
type MacroNutrients struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// NutritionEstimate is a validated model estimate for one meal photo.
// It is transient: the caller decides whether it becomes a log entry.
type NutritionEstimate struct {
	Calories    float64        `json:"calorieEstimate"`
	Macros      MacroNutrients `json:"macroContent"`
	Ingredients string         `json:"ingredients"`
}

// ChatMessage is one prior turn of the advice conversation.
type ChatMessage struct {
	Role string `json:"role"` // user | assistant
	Text string `json:"text"`
}
