package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/loading"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

func sseHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
}

type sseWriter struct{ c *gin.Context }

func (w sseWriter) send(event string, data any) {
	w.c.SSEvent(event, data)
	w.c.Writer.Flush()
}

// handleLoadingStream streams the splash counter as "progress" events and
// ends with a single "complete" event. Disconnecting stops the driver.
func (s *Server) handleLoadingStream(c *gin.Context) {
	ctx := c.Request.Context()
	progress := make(chan int)
	done := make(chan struct{})

	d := loading.NewDriver(s.sched, func(p int) {
		select {
		case progress <- p:
		case <-ctx.Done():
		}
	}, func() { close(done) })

	sseHeaders(c)
	w := sseWriter{c}
	w.send("progress", 0)

	d.Start()
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case p := <-progress:
			w.send("progress", p)
		case <-done:
			w.send("complete", "ok")
			return
		}
	}
}

// handleRolesStream streams typewriter frames until the client goes away.
func (s *Server) handleRolesStream(c *gin.Context) {
	ctx := c.Request.Context()
	frames := make(chan typewriter.Frame)

	a, err := typewriter.NewAnimator(s.sched, s.site.Roles, func(f typewriter.Frame) {
		select {
		case frames <- f:
		case <-ctx.Done():
		}
	})
	if err != nil {
		log.Printf("server: roles stream: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no roles configured"})
		return
	}

	sseHeaders(c)
	w := sseWriter{c}
	w.send("frame", a.Frame())

	a.Start()
	defer a.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-frames:
			w.send("frame", f)
		}
	}
}
