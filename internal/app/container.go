package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/studiobook/studio-booking-backend/internal/api"
	"github.com/studiobook/studio-booking-backend/internal/booking"
	"github.com/studiobook/studio-booking-backend/internal/geo"
	"github.com/studiobook/studio-booking-backend/internal/pkg/kv"
	"github.com/studiobook/studio-booking-backend/internal/studio"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	// Medium is the durable key-value store backing the booking
	// collection; Catalog is the studio snapshot fetched at startup.
	Medium  kv.Store
	Catalog []studio.Studio

	DefaultRef geo.Point

	DayOpensAt          string
	DayClosesAt         string
	SlotIntervalMinutes int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	BookingStore *booking.Store
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	// Studio Module
	studioService := studio.NewService(cfg.Catalog, cfg.DefaultRef)

	// Booking Module
	bookingStore, err := booking.NewStore(ctx, cfg.Medium)
	if err != nil {
		return nil, err
	}
	bookingService := booking.NewService(bookingStore)

	// API Router Config
	routerParams := api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		StudioService:       studioService,
		BookingService:      bookingService,
		DayOpensAt:          cfg.DayOpensAt,
		DayClosesAt:         cfg.DayClosesAt,
		SlotIntervalMinutes: cfg.SlotIntervalMinutes,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:       router,
		BookingStore: bookingStore,
	}, nil
}
