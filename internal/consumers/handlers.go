package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/stan.go"

	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/metrics"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/search"
)

const handleTimeout = 10 * time.Second

var errMalformed = errors.New("malformed event")

// Indexer is the part of the search client the consumers write to.
type Indexer interface {
	Index(ctx context.Context, doc search.Document) error
	Delete(ctx context.Context, kind string, id int64) error
}

type Handlers struct {
	index Indexer
}

func NewHandlers(index Indexer) *Handlers {
	return &Handlers{index: index}
}

// HandleRecordChanged keeps the name index in step with venue and artist writes.
func (h *Handlers) HandleRecordChanged(m *stan.Msg) {
	h.ack(m, h.recordChanged(m.Data))
}

// HandleShowCreated only records the listing; nothing is indexed for shows.
func (h *Handlers) HandleShowCreated(m *stan.Msg) {
	h.ack(m, h.showCreated(m.Data))
}

func (h *Handlers) recordChanged(data []byte) error {
	var event models.RecordChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if event.Deleted {
		if err := h.index.Delete(ctx, event.Kind, event.ID); err != nil {
			return err
		}
		slog.Info("Removed record from search index", "kind", event.Kind, "id", event.ID)
		return nil
	}

	if err := h.index.Index(ctx, search.DocumentFromEvent(event)); err != nil {
		return err
	}
	slog.Info("Indexed record", "kind", event.Kind, "id", event.ID, "name", event.Name)
	return nil
}

func (h *Handlers) showCreated(data []byte) error {
	var event models.ShowCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	slog.Info("Show listed",
		"show_id", event.ShowID,
		"venue_id", event.VenueID,
		"artist_id", event.ArtistID,
		"start_time", event.StartTime,
	)
	return nil
}

// ack acknowledges m unless err is worth a redelivery. Malformed payloads
// are dropped.
func (h *Handlers) ack(m *stan.Msg, err error) {
	metrics.TrackConsumedEvent(m.Subject, err)
	log := logger.WithFields("subject", m.Subject, "sequence", m.Sequence)

	switch {
	case errors.Is(err, errMalformed):
		log.Error("Dropping malformed event", "error", err)
	case err != nil:
		log.Error("Failed to handle event, waiting for redelivery", "error", err)
		return
	}

	if ackErr := m.Ack(); ackErr != nil {
		log.Error("Failed to ack event", "error", ackErr)
	}
}
