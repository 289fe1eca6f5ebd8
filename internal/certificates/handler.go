package certificates

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches certificate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/certificates", h.upload)
	rg.GET("/certificates/:id", h.get)
	rg.GET("/certificates", h.list)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("certificado")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Sube el PDF del certificado.", nil)
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "El archivo debe ser PDF.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No se pudo leer el archivo.", nil)
		return
	}
	defer file.Close()

	socialURL := strings.TrimSpace(c.PostForm("social_url"))
	mimeType := fileHeader.Header.Get("Content-Type")

	cert, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, mimeType, socialURL, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnreadable):
			respond.Error(c, http.StatusBadRequest, "validation_error", "No se pudo leer el PDF.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "No se pudo guardar el certificado.", nil)
		}
		return
	}

	c.Set("certificateId", cert.ID)
	respond.JSON(c, http.StatusCreated, toResponse(cert))
}

func (h *Handler) get(c *gin.Context) {
	cert, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Certificado no encontrado.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "No se pudo consultar el certificado.", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(cert))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	certs, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "No se pudo listar los certificados.", nil)
		return
	}

	resp := make([]CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, toResponse(cert))
	}
	respond.JSON(c, http.StatusOK, resp)
}
