package services

import (
	"testing"
	"time"

	"github.com/wanderplan/api/internal/models"
)

func TestArchiveServiceDrainsWithoutStore(t *testing.T) {
	as := NewArchiveService(nil, testLogger())
	as.Start()

	for i := 0; i < 10; i++ {
		as.Enqueue(&models.Itinerary{ID: "itin"})
	}

	done := make(chan struct{})
	go func() {
		as.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("archive service did not drain and stop")
	}
}

func TestArchiveEnqueueNeverBlocks(t *testing.T) {
	// no worker started: the queue fills and further jobs are dropped
	as := NewArchiveService(nil, testLogger())

	done := make(chan struct{})
	go func() {
		for i := 0; i < archiveQueueSize+10; i++ {
			as.Enqueue(&models.Itinerary{ID: "itin"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
