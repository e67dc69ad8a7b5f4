// Package web exposes the announcement composer over HTTP so schedules can
// be previewed without the CLI.
package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ksylvia16/weekly-messaging/internal/compose"
)

// Composer is the engine surface the handlers drive. *engine.Engine
// implements it.
type Composer interface {
	Weekly(track string, weekMonday time.Time) (string, error)
	Friday(track string, friday time.Time, section string) (compose.RecapResult, error)
	Reminders(track, section string) ([]compose.ReminderBlock, error)
	WatchGuides(track, section string) ([]string, error)
	Calendar(track string, now time.Time) (string, error)
	Tracks() ([]string, error)
	Sections() ([]string, error)
}

// Server is the announcement web server
type Server struct {
	composer Composer
	router   *gin.Engine
}

// NewServer creates a new web server
func NewServer(composer Composer) *Server {
	router := gin.Default()

	s := &Server{
		composer: composer,
		router:   router,
	}
	s.registerRoutes(router)

	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(pageTemplates)

	// Web routes
	router.GET("/", s.handleIndex)
	router.GET("/weekly", s.handleWeeklyPage)
	router.GET("/friday", s.handleFridayPage)
	router.GET("/reminders", s.handleRemindersPage)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/tracks", s.handleTracks)
		api.GET("/sections", s.handleSections)
		api.GET("/weekly", s.handleWeekly)
		api.GET("/friday", s.handleFriday)
		api.GET("/reminders", s.handleReminders)
		api.GET("/watch-guide", s.handleWatchGuide)
	}

	router.GET("/calendar.ics", s.handleCalendar)
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
