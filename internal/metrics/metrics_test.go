package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

func TestTrackRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	TrackRequest("GET", "", 404, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestSetCatalogStats(t *testing.T) {
	SetCatalogStats(&models.CatalogStats{Venues: 3, Artists: 3, UpcomingShows: 3, PastShows: 2})

	assert.Equal(t, 3.0, testutil.ToFloat64(catalogRecords.WithLabelValues("venues")))
	assert.Equal(t, 2.0, testutil.ToFloat64(catalogRecords.WithLabelValues("past_shows")))
}

func TestTrackConsumedEvent(t *testing.T) {
	TrackConsumedEvent("venue.created", errors.New("index down"))
	assert.Equal(t, 1.0, testutil.ToFloat64(consumedEvents.WithLabelValues("venue.created", "error")))
}
