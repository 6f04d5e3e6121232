package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderplan/api/internal/models"
)

const (
	archiveQueueSize      = 64
	archiveInsertTimeout  = 10 * time.Second
	archiveRetryDelay     = 2 * time.Second
	archiveAttemptsPerJob = 2
)

// ArchiveService persists finished itineraries off the request path. Enqueue
// never blocks a request: jobs go onto a buffered queue drained by a single
// background worker that writes to MongoDB with a retry. Without a Mongo
// client the service degrades to logging the drop, keeping the API usable
// with no database at all.
type ArchiveService struct {
	coll   *mongo.Collection
	logger *slog.Logger
	queue  chan *models.Itinerary
	done   chan struct{}
}

func NewArchiveService(client *mongo.Client, logger *slog.Logger) *ArchiveService {
	as := &ArchiveService{
		logger: logger,
		queue:  make(chan *models.Itinerary, archiveQueueSize),
		done:   make(chan struct{}),
	}
	if client != nil {
		as.coll = client.Database("wanderplan").Collection("itineraries")
	}
	return as
}

// Start launches the worker goroutine. Call once.
func (as *ArchiveService) Start() {
	go func() {
		defer close(as.done)
		for itin := range as.queue {
			as.save(itin)
		}
	}()
}

// Enqueue hands an itinerary to the worker. If the queue is full the job is
// dropped with a log line rather than stalling the caller.
func (as *ArchiveService) Enqueue(itin *models.Itinerary) {
	select {
	case as.queue <- itin:
	default:
		as.logger.Warn("Archive queue full, dropping itinerary", "itinerary_id", itin.ID)
	}
}

// Stop drains the queue and waits for the worker to finish.
func (as *ArchiveService) Stop() {
	close(as.queue)
	<-as.done
}

func (as *ArchiveService) save(itin *models.Itinerary) {
	if as.coll == nil {
		as.logger.Info("No archive store configured, skipping save", "itinerary_id", itin.ID)
		return
	}

	var err error
	for attempt := 1; attempt <= archiveAttemptsPerJob; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), archiveInsertTimeout)
		_, err = as.coll.InsertOne(ctx, itin)
		cancel()
		if err == nil {
			as.logger.Info("Itinerary archived", "itinerary_id", itin.ID)
			return
		}
		if attempt < archiveAttemptsPerJob {
			time.Sleep(archiveRetryDelay)
		}
	}

	as.logger.Error("Failed to archive itinerary", "itinerary_id", itin.ID, "error", err)
}
