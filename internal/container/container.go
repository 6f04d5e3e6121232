package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderplan/api/internal/ai"
	"github.com/wanderplan/api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	MongoDBClient  *mongo.Client
	PlannerService *services.PlannerService
	BookingService *services.BookingService
	SearchService  *services.SearchService
	ArchiveService *services.ArchiveService
}

// NewContainer creates a new dependency injection container. mongoClient may
// be nil; the archive service then runs in drop-and-log mode.
func NewContainer(logger *slog.Logger, completer ai.Completer, mongoClient *mongo.Client) *Container {
	plannerService := services.NewPlannerService(completer, logger)
	bookingService := services.NewBookingService(logger)
	searchService := services.NewSearchService()
	archiveService := services.NewArchiveService(mongoClient, logger)

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoClient,
		PlannerService: plannerService,
		BookingService: bookingService,
		SearchService:  searchService,
		ArchiveService: archiveService,
	}
}
