package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const dateParamLayout = "2006-01-02"

// dateParam reads a YYYY-MM-DD query parameter, defaulting to now.
func dateParam(c *gin.Context, name string, now time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return now, true
	}
	d, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   name + " must be YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return d, true
}

func (s *Server) handleTracks(c *gin.Context) {
	tracks, err := s.composer.Tracks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tracks": tracks})
}

func (s *Server) handleSections(c *gin.Context) {
	sections, err := s.composer.Sections()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sections": sections})
}

func (s *Server) handleWeekly(c *gin.Context) {
	track := c.Query("track")
	if track == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "track parameter required"})
		return
	}

	day, ok := dateParam(c, "monday", time.Now())
	if !ok {
		return
	}
	// Snap to the Monday of that week
	monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))

	msg, err := s.composer.Weekly(track, monday)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"track":   track,
		"monday":  monday.Format(dateParamLayout),
		"message": msg,
	})
}

func (s *Server) handleFriday(c *gin.Context) {
	track := c.Query("track")
	if track == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "track parameter required"})
		return
	}

	day, ok := dateParam(c, "date", time.Now())
	if !ok {
		return
	}

	res, err := s.composer.Friday(track, day, c.Query("section"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"track":    track,
		"friday":   res.Friday.Format(dateParamLayout),
		"adjusted": res.Adjusted,
		"notices":  res.Notices,
		"blocks":   res.Blocks,
	})
}

func (s *Server) handleReminders(c *gin.Context) {
	blocks, err := s.composer.Reminders(c.Query("track"), c.Query("section"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blocks":  blocks,
		"count":   len(blocks),
	})
}

func (s *Server) handleWatchGuide(c *gin.Context) {
	guides, err := s.composer.WatchGuides(c.Query("track"), c.Query("section"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"guides":  guides,
		"count":   len(guides),
	})
}

func (s *Server) handleCalendar(c *gin.Context) {
	track := c.Query("track")
	if track == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "track parameter required"})
		return
	}

	feed, err := s.composer.Calendar(track, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
