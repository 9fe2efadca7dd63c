package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/studiobook/studio-booking-backend/internal/booking"
	bookingHttp "github.com/studiobook/studio-booking-backend/internal/booking/http"
	scheduleHttp "github.com/studiobook/studio-booking-backend/internal/schedule/http"
	"github.com/studiobook/studio-booking-backend/internal/studio"
	studioHttp "github.com/studiobook/studio-booking-backend/internal/studio/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	StudioService  studio.Service
	BookingService booking.Service

	DayOpensAt          string
	DayClosesAt         string
	SlotIntervalMinutes int
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Recovery) and registers
// routes for the studio, booking and schedule modules.
func NewRouter(params Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if params.IsProduction && params.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(params.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:4200", // Local UI dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	studioHandler := studioHttp.NewHandler(params.StudioService)
	bookingHandler := bookingHttp.NewHandler(params.BookingService, params.StudioService)
	scheduleHandler := scheduleHttp.NewHandler(params.DayOpensAt, params.DayClosesAt, params.SlotIntervalMinutes)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		studioHttp.RegisterRoutes(v1, studioHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler)
	}

	return r
}
