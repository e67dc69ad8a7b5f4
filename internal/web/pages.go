package web

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Templates are compiled in so the server has no runtime asset directory.
var pageTemplates = template.Must(template.New("index.html").Parse(indexHTML))

func init() {
	template.Must(pageTemplates.New("message.html").Parse(messageHTML))
	template.Must(pageTemplates.New("error.html").Parse(errorHTML))
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Weekly Messaging</title></head>
<body>
<h1>Weekly Messaging</h1>
<p>Tracks:</p>
<ul>
{{range .tracks}}<li><a href="/weekly?track={{.}}">{{.}}</a> —
<a href="/friday?track={{.}}">friday</a> ·
<a href="/reminders?track={{.}}">reminders</a> ·
<a href="/calendar.ics?track={{.}}">calendar</a></li>
{{else}}<li>No rosters found.</li>
{{end}}</ul>
</body>
</html>
`

const messageHTML = `<!DOCTYPE html>
<html>
<head><title>{{.title}}</title></head>
<body>
<h1>{{.title}}</h1>
<pre>{{.message}}</pre>
<p><a href="/">back</a></p>
</body>
</html>
`

const errorHTML = `<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Error</h1>
<p>{{.error}}</p>
<p><a href="/">back</a></p>
</body>
</html>
`

func (s *Server) handleIndex(c *gin.Context) {
	tracks, err := s.composer.Tracks()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"tracks": tracks})
}

// pageTrack reads the track parameter, rendering the error page when it is
// missing.
func pageTrack(c *gin.Context) (string, bool) {
	track := c.Query("track")
	if track == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "track parameter required"})
		return "", false
	}
	return track, true
}

func pageDateParam(c *gin.Context, name string, now time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return now, true
	}
	d, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": name + " must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

func (s *Server) handleWeeklyPage(c *gin.Context) {
	track, ok := pageTrack(c)
	if !ok {
		return
	}
	day, ok := pageDateParam(c, "monday", time.Now())
	if !ok {
		return
	}
	monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))

	msg, err := s.composer.Weekly(track, monday)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "message.html", gin.H{
		"title":   "Monday digest — " + track,
		"message": msg,
	})
}

func (s *Server) handleFridayPage(c *gin.Context) {
	track, ok := pageTrack(c)
	if !ok {
		return
	}
	day, ok := pageDateParam(c, "date", time.Now())
	if !ok {
		return
	}

	res, err := s.composer.Friday(track, day, c.Query("section"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	var parts []string
	for _, n := range res.Notices {
		parts = append(parts, "⚠️ "+n)
	}
	for _, block := range res.Blocks {
		parts = append(parts, "--- Section "+block.Section+" ---\n\n"+block.Text)
	}
	if len(res.Blocks) == 0 {
		parts = append(parts, "No recap messages to post.")
	}

	c.HTML(http.StatusOK, "message.html", gin.H{
		"title":   "Friday recap — " + track,
		"message": strings.Join(parts, "\n\n"),
	})
}

func (s *Server) handleRemindersPage(c *gin.Context) {
	track, ok := pageTrack(c)
	if !ok {
		return
	}

	blocks, err := s.composer.Reminders(track, c.Query("section"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	if len(blocks) == 0 {
		c.HTML(http.StatusOK, "message.html", gin.H{
			"title":   "End-of-lab reminders — " + track,
			"message": "No sessions found.",
		})
		return
	}

	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, b.Render())
	}
	c.HTML(http.StatusOK, "message.html", gin.H{
		"title":   "End-of-lab reminders — " + track,
		"message": strings.Join(rendered, "\n\n---\n\n"),
	})
}
