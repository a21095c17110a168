package inference

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aribzeeshan2446/NutriSnap/internal/llm"
)

type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// rawEstimate mirrors the model's declared output schema with pointer
// fields so a missing field is distinguishable from a zero value.
type rawEstimate struct {
	CalorieEstimate *float64 `json:"calorieEstimate"`
	MacroContent    *struct {
		Protein       *float64 `json:"protein"`
		Carbohydrates *float64 `json:"carbohydrates"`
		Fat           *float64 `json:"fat"`
	} `json:"macroContent"`
	Ingredients string `json:"ingredients"`
}

// Estimate turns a meal photo (plus optional prior-estimate context)
// into a validated NutritionEstimate. Every failure path returns a
// classified *Error; the service never writes anywhere.
func (s *Service) Estimate(
	ctx context.Context,
	image llm.ImageBlob,
	previousEstimates string,
) (*NutritionEstimate, error) {

	if !strings.HasPrefix(image.MIMEType, "image/") {
		return nil, newError(KindInvalidInput, "unsupported file type: "+image.MIMEType)
	}

	prompt := BuildEstimatePrompt(previousEstimates)

	output, err := s.client.GenerateJSON(ctx, prompt, &image)
	if err != nil {
		return nil, Classify(err)
	}

	var raw rawEstimate
	if err := json.Unmarshal([]byte(output), &raw); err != nil {
		return nil, newError(KindMalformedModelOutput, "model did not return the expected output structure")
	}

	if raw.CalorieEstimate == nil ||
		raw.MacroContent == nil ||
		raw.MacroContent.Protein == nil ||
		raw.MacroContent.Carbohydrates == nil ||
		raw.MacroContent.Fat == nil ||
		raw.Ingredients == "" {
		return nil, newError(KindMalformedModelOutput, "model returned an incomplete output structure")
	}

	return &NutritionEstimate{
		Calories: *raw.CalorieEstimate,
		Macros: MacroNutrients{
			Protein:       *raw.MacroContent.Protein,
			Carbohydrates: *raw.MacroContent.Carbohydrates,
			Fat:           *raw.MacroContent.Fat,
		},
		Ingredients: raw.Ingredients,
	}, nil
}
