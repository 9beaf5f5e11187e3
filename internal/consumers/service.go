package consumers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/stan.go"

	"github.com/MLR-5819/FSND-Fyyur/internal/config"
	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/messaging"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/search"
	"github.com/MLR-5819/FSND-Fyyur/internal/service"
)

const queueGroup = "fyyur-consumers"

// ConsumerService runs the event subscribers next to the catalog stats job.
type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	search   *search.ElasticsearchClient
	services *service.Services
	handlers *Handlers
	subs     []stan.Subscription
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		db.Close()
		return nil, err
	}

	es, err := search.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		natsClient.Close()
		db.Close()
		return nil, fmt.Errorf("consumers need the search index: %w", err)
	}

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		search:   es,
		services: service.NewServices(service.Options{DB: db}),
		handlers: NewHandlers(es),
	}, nil
}

// DB is shared with the background jobs.
func (cs *ConsumerService) DB() *database.DB {
	return cs.db
}

// Shows is shared with the catalog stats job.
func (cs *ConsumerService) Shows() *service.ShowService {
	return cs.services.Shows
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	subscriptions := map[string]stan.MsgHandler{
		models.EventVenueCreated:  cs.handlers.HandleRecordChanged,
		models.EventVenueUpdated:  cs.handlers.HandleRecordChanged,
		models.EventVenueDeleted:  cs.handlers.HandleRecordChanged,
		models.EventArtistCreated: cs.handlers.HandleRecordChanged,
		models.EventArtistUpdated: cs.handlers.HandleRecordChanged,
		models.EventArtistDeleted: cs.handlers.HandleRecordChanged,
		models.EventShowCreated:   cs.handlers.HandleShowCreated,
	}

	for subject, handler := range subscriptions {
		sub, err := cs.nats.SubscribeQueue(subject, queueGroup, handler)
		if err != nil {
			return err
		}
		cs.subs = append(cs.subs, sub)
	}

	slog.Info("All consumers started successfully", "subjects", len(subscriptions))
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	// Close keeps the durable queue position; Unsubscribe would drop it.
	for _, sub := range cs.subs {
		if err := sub.Close(); err != nil {
			slog.Error("Error closing subscription", "error", err)
		}
	}

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return ctx.Err()
}
