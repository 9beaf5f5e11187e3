package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	for i, migration := range Migrations {
		slog.Debug("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully", "count", len(Migrations))
	return nil
}

// Migrations are idempotent and run in order at startup.
var Migrations = []string{
	createVenuesTable,
	createArtistsTable,
	createShowsTable,
	createVenuesNameIndex,
	createVenuesAreaIndex,
	createArtistsNameIndex,
	createShowsIndexes,
}

const createVenuesTable = `
CREATE TABLE IF NOT EXISTS venues (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(120) NOT NULL,
    genres VARCHAR(500) NOT NULL DEFAULT '',
    address VARCHAR(120) NOT NULL DEFAULT '',
    city VARCHAR(120) NOT NULL DEFAULT '',
    state VARCHAR(120) NOT NULL DEFAULT '',
    phone VARCHAR(120) NOT NULL DEFAULT '',
    website VARCHAR(120) NOT NULL DEFAULT '',
    facebook_link VARCHAR(120) NOT NULL DEFAULT '',
    seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
    seeking_description VARCHAR(500) NOT NULL DEFAULT '',
    image_link VARCHAR(500) NOT NULL DEFAULT ''
);`

const createArtistsTable = `
CREATE TABLE IF NOT EXISTS artists (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(120) NOT NULL,
    genres VARCHAR(500) NOT NULL DEFAULT '',
    city VARCHAR(120) NOT NULL DEFAULT '',
    state VARCHAR(120) NOT NULL DEFAULT '',
    phone VARCHAR(120) NOT NULL DEFAULT '',
    website VARCHAR(120) NOT NULL DEFAULT '',
    image_link VARCHAR(500) NOT NULL DEFAULT '',
    facebook_link VARCHAR(120) NOT NULL DEFAULT '',
    seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
    seeking_description VARCHAR(500) NOT NULL DEFAULT ''
);`

const createShowsTable = `
CREATE TABLE IF NOT EXISTS shows (
    id BIGSERIAL PRIMARY KEY,
    start_time TIMESTAMP NOT NULL,
    venue_id BIGINT NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
    artist_id BIGINT NOT NULL REFERENCES artists(id) ON DELETE CASCADE
);`

const createVenuesNameIndex = `
CREATE INDEX IF NOT EXISTS idx_venues_lower_name ON venues (lower(name));`

const createVenuesAreaIndex = `
CREATE INDEX IF NOT EXISTS idx_venues_area ON venues (state, city);`

const createArtistsNameIndex = `
CREATE INDEX IF NOT EXISTS idx_artists_lower_name ON artists (lower(name));`

const createShowsIndexes = `
CREATE INDEX IF NOT EXISTS idx_shows_start_time ON shows (start_time);
CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows (venue_id);
CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows (artist_id);`
