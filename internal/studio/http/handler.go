package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiobook/studio-booking-backend/internal/pkg/request"
	"github.com/studiobook/studio-booking-backend/internal/studio"
)

type Handler struct {
	service studio.Service
}

func NewHandler(service studio.Service) *Handler {
	return &Handler{service: service}
}

// Search filters the catalog by location text and an optional radius.
func (h *Handler) Search(c *gin.Context) {
	var req SearchStudiosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	studios := h.service.Search(req.Query, req.RadiusKm)

	items := make([]StudioResponse, len(studios))
	for i := range studios {
		items[i] = NewStudioResponse(&studios[i])
	}

	c.JSON(http.StatusOK, gin.H{"studios": items})
}

// Get retrieves one studio by its catalog id.
func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid studio id"})
		return
	}

	st, err := h.service.GetByID(req.ID)
	if err != nil {
		if err == studio.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "studio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get studio"})
		return
	}

	c.JSON(http.StatusOK, NewStudioResponse(st))
}
