package sentiment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/shared/server/respond"
)

// Handler exposes sentiment scoring over HTTP.
type Handler struct {
	Scorer Scorer
}

// NewHandler constructs a Handler.
func NewHandler(scorer Scorer) *Handler {
	return &Handler{Scorer: scorer}
}

// RegisterRoutes attaches sentiment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sentiment", h.score)
}

type scoreRequest struct {
	Reviews []string `json:"reviews"`
}

type scoreResponse struct {
	Sentiment float64 `json:"sentiment"`
	Scorer    string  `json:"scorer"`
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Envía una lista de reseñas.", nil)
		return
	}

	score, err := h.Scorer.Score(c.Request.Context(), req.Reviews)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "sentiment_unavailable", "No se pudo calcular el sentimiento.", nil)
		return
	}
	respond.OK(c, scoreResponse{Sentiment: score, Scorer: h.Scorer.Name()})
}
