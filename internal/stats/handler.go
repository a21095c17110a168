package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aribzeeshan2446/NutriSnap/internal/entry"
	"github.com/aribzeeshan2446/NutriSnap/internal/settings"
)

type Handler struct {
	entries  *entry.Service
	settings *settings.Store
}

func NewHandler(entries *entry.Service, settingsStore *settings.Store) *Handler {
	return &Handler{
		entries:  entries,
		settings: settingsStore,
	}
}

// --------------------------------------------------
// GET /stats/today
// --------------------------------------------------
func (h *Handler) Today(c *gin.Context) {
	entries, err := h.entries.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	userSettings := h.settings.Get()

	c.JSON(http.StatusOK, gin.H{
		"calories": TodayTotal(entries, now),
		"goal":     userSettings.EffectiveDailyCalorieGoal(),
		"ratio":    ProgressRatio(entries, userSettings, now),
	})
}

// --------------------------------------------------
// GET /stats/daily | /stats/weekly | /stats/monthly
// --------------------------------------------------
func (h *Handler) Daily(c *gin.Context) {
	h.series(c, DailySeries)
}

func (h *Handler) Weekly(c *gin.Context) {
	h.series(c, WeeklySeries)
}

func (h *Handler) Monthly(c *gin.Context) {
	h.series(c, MonthlySeries)
}

func (h *Handler) series(c *gin.Context, fn func([]entry.LogEntry, time.Time) []Bucket) {
	entries, err := h.entries.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, fn(entries, time.Now()))
}
