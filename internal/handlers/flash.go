package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/metrics"
)

const (
	flashInfo  = "info"
	flashError = "danger"
)

// Notice is a flash message shown once on the next rendered page.
type Notice struct {
	Category string
	Message  string
}

func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		logger.WithContext(c.Request.Context()).Warn("Failed to save flash", "error", err)
	}
	metrics.TrackNotice(category)
}

func popFlashes(c *gin.Context) []Notice {
	session := sessions.Default(c)

	var notices []Notice
	for _, category := range []string{flashError, flashInfo} {
		for _, f := range session.Flashes(category) {
			if msg, ok := f.(string); ok {
				notices = append(notices, Notice{Category: category, Message: msg})
			}
		}
	}

	if len(notices) > 0 {
		if err := session.Save(); err != nil {
			logger.WithContext(c.Request.Context()).Warn("Failed to clear flashes", "error", err)
		}
	}
	return notices
}
