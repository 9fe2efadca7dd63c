package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/schedule")
	{
		group.GET("/constraints", h.Constraints)
		group.GET("/slots", h.Slots)
	}
}
