package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aribzeeshan2446/NutriSnap/internal/entry"
	"github.com/aribzeeshan2446/NutriSnap/internal/inference"
	"github.com/aribzeeshan2446/NutriSnap/internal/llm"
	"github.com/aribzeeshan2446/NutriSnap/internal/settings"
	"github.com/aribzeeshan2446/NutriSnap/internal/stats"
)

type stubClient struct {
	output string
	err    error
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string, image *llm.ImageBlob) (string, error) {
	return s.output, s.err
}

func (s *stubClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.output, s.err
}

func setupRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()

	repo, err := entry.NewFileRepository(filepath.Join(dataDir, "calorie-log.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entryService := entry.NewService(repo)
	settingsStore := settings.NewStore(filepath.Join(dataDir, "settings.json"))

	return New(
		inference.NewHandler(inference.NewService(client)),
		entry.NewHandler(entryService),
		settings.NewHandler(settingsStore),
		stats.NewHandler(entryService, settingsStore),
	)
}

func estimateRequest(t *testing.T, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="meal.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	part.Write([]byte("fake-image-bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/estimate", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestEstimateEndpointSuccess(t *testing.T) {
	client := &stubClient{
		output: `{"calorieEstimate": 420, "macroContent": {"protein": 20, "carbohydrates": 40, "fat": 15}, "ingredients": "rice, beans"}`,
	}
	r := setupRouter(t, client)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, estimateRequest(t, "image/png"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var estimate inference.NutritionEstimate
	if err := json.Unmarshal(w.Body.Bytes(), &estimate); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if estimate.Calories != 420 || estimate.Ingredients != "rice, beans" {
		t.Fatalf("unexpected estimate: %+v", estimate)
	}
}

func TestEstimateEndpointRejectsNonImage(t *testing.T) {
	r := setupRouter(t, &stubClient{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, estimateRequest(t, "application/pdf"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp struct {
		Kind inference.Kind `json:"kind"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Kind != inference.KindInvalidInput {
		t.Fatalf("expected kind %s, got %s", inference.KindInvalidInput, resp.Kind)
	}
}

func TestEstimateEndpointMapsTransientFailureTo503(t *testing.T) {
	r := setupRouter(t, &stubClient{err: errors.New("gemini api error: rate limit exceeded")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, estimateRequest(t, "image/jpeg"))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	r := setupRouter(t, &stubClient{output: "Plenty of water helps."})

	body, _ := json.Marshal(map[string]any{
		"message": "How much water should I drink?",
		"history": []map[string]string{
			{"role": "user", "text": "hi"},
			{"role": "assistant", "text": "hello"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reply string `json:"reply"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Reply != "Plenty of water helps." {
		t.Fatalf("unexpected reply: %q", resp.Reply)
	}
}

func TestStatsTodayReflectsCreatedEntries(t *testing.T) {
	r := setupRouter(t, &stubClient{})

	for _, calories := range []float64{500, 700} {
		body, _ := json.Marshal(map[string]any{
			"foodDescription": "meal",
			"calories":        calories,
		})
		req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/stats/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Calories float64 `json:"calories"`
		Goal     float64 `json:"goal"`
		Ratio    float64 `json:"ratio"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Calories != 1200 {
		t.Errorf("calories = %v, want 1200", resp.Calories)
	}
	if resp.Goal != 2000 {
		t.Errorf("goal = %v, want the 2000 default", resp.Goal)
	}
	if resp.Ratio != 0.6 {
		t.Errorf("ratio = %v, want 0.6", resp.Ratio)
	}
}
