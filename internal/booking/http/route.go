package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
	}

	g.GET("/availability", h.Availability)
	g.GET("/studios/:id/bookings", h.ListForStudio)
}
