package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/studios")
	{
		group.GET("", h.Search)
		group.GET("/:id", h.Get)
	}
}
