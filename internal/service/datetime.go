package service

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

// Layouts for the two named patterns, English only.
const (
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDatetime parses value in UTC and renders it with "full", "medium"
// or any other Go layout.
func FormatDatetime(value, format string) (string, error) {
	t, err := ParseStartTime(value)
	if err != nil {
		return "", err
	}
	return FormatTime(t, format), nil
}

func FormatTime(t time.Time, format string) string {
	layout := format
	switch format {
	case "full":
		layout = FullLayout
	case "medium":
		layout = MediumLayout
	}
	return t.UTC().Format(layout)
}

// ParseStartTime accepts the loose timestamp formats the show form allows.
func ParseStartTime(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse datetime %q: %w", value, err)
	}
	return t.UTC(), nil
}

// partition splits rows into past (start <= now) and upcoming (start > now).
func partition(rows []models.ShowRow, now time.Time) (past, upcoming []models.ShowRow) {
	for _, r := range rows {
		if r.StartTime.After(now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	return past, upcoming
}
