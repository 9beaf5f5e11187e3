package service

import (
	"context"
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
)

const (
	cacheKeyAreas   = "fyyur:venues:areas"
	cacheKeyArtists = "fyyur:artists:list"
)

// Publisher sends domain events after a commit.
type Publisher interface {
	Publish(subject string, data interface{}) error
}

// NameIndex resolves name searches to record ids.
type NameIndex interface {
	SearchIDs(ctx context.Context, kind, term string) ([]int64, error)
}

// ListingCache stores rendered listing data between writes.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Options wires the optional integrations. Only DB is required.
type Options struct {
	DB        *database.DB
	Publisher Publisher
	Index     NameIndex
	Cache     ListingCache
	Now       func() time.Time
}

type Services struct {
	Venues  *VenueService
	Artists *ArtistService
	Shows   *ShowService
}

func NewServices(opts Options) *Services {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	c := &core{
		db:        opts.DB,
		publisher: opts.Publisher,
		index:     opts.Index,
		cache:     opts.Cache,
		now:       opts.Now,
	}
	return &Services{
		Venues:  &VenueService{core: c},
		Artists: &ArtistService{core: c},
		Shows:   &ShowService{core: c},
	}
}

// core holds what every service shares.
type core struct {
	db        *database.DB
	publisher Publisher
	index     NameIndex
	cache     ListingCache
	now       func() time.Time
}

func (c *core) clock() time.Time {
	return c.now().UTC()
}

func (c *core) publish(ctx context.Context, subject string, event interface{}) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(subject, event); err != nil {
		logger.WithContext(ctx).Warn("Failed to publish event", "subject", subject, "error", err)
	}
}

func (c *core) cached(ctx context.Context, key string, dest any) bool {
	if c.cache == nil {
		return false
	}
	hit, err := c.cache.GetJSON(ctx, key, dest)
	if err != nil {
		logger.WithContext(ctx).Warn("Cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (c *core) store(ctx context.Context, key string, value any) {
	if c.cache == nil {
		return
	}
	if err := c.cache.SetJSON(ctx, key, value); err != nil {
		logger.WithContext(ctx).Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *core) invalidate(ctx context.Context, keys ...string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, keys...); err != nil {
		logger.WithContext(ctx).Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}

// searchIDs asks the index first. ok is false when the caller should fall back to SQL:
// the index is unavailable or has no hits, which includes records it has not caught up on.
func (c *core) searchIDs(ctx context.Context, kind, term string) (ids []int64, ok bool) {
	if c.index == nil {
		return nil, false
	}
	ids, err := c.index.SearchIDs(ctx, kind, term)
	if err != nil {
		logger.WithContext(ctx).Warn("Search index unavailable, using database", "kind", kind, "error", err)
		return nil, false
	}
	if len(ids) == 0 {
		return nil, false
	}
	return ids, true
}
