package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// GET /settings
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

// --------------------------------------------------
// PUT /settings
// --------------------------------------------------
func (h *Handler) Put(c *gin.Context) {
	var settings UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	for _, goal := range []*float64{
		settings.DailyCalorieGoal,
		settings.DailyProteinGoal,
		settings.DailyCarbsGoal,
		settings.DailyFatGoal,
	} {
		if goal != nil && *goal < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "goals cannot be negative"})
			return
		}
	}

	if err := h.store.Save(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
