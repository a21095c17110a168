package inference

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aribzeeshan2446/NutriSnap/internal/llm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /estimate
// --------------------------------------------------
func (h *Handler) Estimate(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
		return
	}

	blob := llm.ImageBlob{
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}

	previousEstimates := c.PostForm("previous_estimates")

	estimate, err := h.service.Estimate(c.Request.Context(), blob, previousEstimates)
	if err != nil {
		writeClassified(c, err)
		return
	}

	// The caller decides whether to log the estimate: POST /entries is
	// a separate request, so abandoning this one leaves no state.
	c.JSON(http.StatusOK, estimate)
}

// --------------------------------------------------
// POST /chat
// --------------------------------------------------
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string        `json:"message" binding:"required"`
		History []ChatMessage `json:"history"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.service.Converse(c.Request.Context(), req.Message, req.History)
	if err != nil {
		writeClassified(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func writeClassified(c *gin.Context, err error) {
	infErr := Classify(err)

	status := http.StatusInternalServerError
	switch infErr.Kind {
	case KindInvalidInput:
		status = http.StatusBadRequest
	case KindTransientUnavailable:
		status = http.StatusServiceUnavailable
	case KindContentBlocked:
		status = http.StatusUnprocessableEntity
	case KindMalformedModelOutput:
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"error": UserMessage(infErr.Kind),
		"kind":  infErr.Kind,
	})
}
