package assessments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/certificates"
	"certrisk-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.create)
	rg.GET("/assessments/:id", h.get)
	rg.GET("/certificates/:id/assessments", h.listByCertificate)
}

type createRequest struct {
	CertificateID string `json:"certificateId"`
	CaseID        string `json:"caseId"`
	SocialURL     string `json:"socialUrl"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Cuerpo JSON inválido.", nil)
		return
	}

	a, err := h.Svc.Create(c.Request.Context(), CreateInput{
		CertificateID: req.CertificateID,
		CaseID:        req.CaseID,
		SocialURL:     req.SocialURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, certificates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Certificado no encontrado.", nil)
		case errors.Is(err, ErrInvalidInput), errors.Is(err, certificates.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Indica certificateId o caseId.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "No se pudo evaluar el expediente.", nil)
		}
		return
	}

	c.Set("assessmentId", a.ID)
	c.Set("assessmentStatus", a.Status)
	respond.JSON(c, http.StatusCreated, toResponse(a))
}

func (h *Handler) get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Evaluación no encontrada.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Identificador inválido.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "No se pudo consultar la evaluación.", nil)
		}
		return
	}
	respond.OK(c, toResponse(a))
}

func (h *Handler) listByCertificate(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	items, err := h.Svc.ListByCertificate(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Identificador inválido.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "No se pudo listar las evaluaciones.", nil)
		return
	}

	out := make([]AssessmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	respond.OK(c, gin.H{"items": out})
}
