// Package server is the HTTP shell around the portfolio page.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scheduler"
	"github.com/Zachkp/portfolio/internal/theme"
)

//go:embed templates/*.html static/*
var assets embed.FS

type Server struct {
	cfg    *config.Config
	site   *content.Site
	themes *theme.Store
	sched  scheduler.Scheduler
	engine *gin.Engine
}

// New wires the routes. sched drives every animation stream and the
// simulated contact delay.
func New(cfg *config.Config, site *content.Site, themes *theme.Store, sched scheduler.Scheduler) *Server {
	gin.SetMode(cfg.Mode)
	s := &Server{cfg: cfg, site: site, themes: themes, sched: sched}

	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(assets, "templates/*.html")))
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(visitorMiddleware())

	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTMX fragments
	r.GET("/projects", s.handleProjects)
	r.GET("/projects/:id", s.handleProjectDetail)
	r.POST("/contact", s.handleContact)

	stream := r.Group("/stream")
	stream.GET("/loading", s.handleLoadingStream)
	stream.GET("/roles", s.handleRolesStream)

	r.GET("/nav/ws", s.handleNavSocket)

	api := r.Group("/api")
	api.POST("/nav/active", s.handleActiveSection)
	api.GET("/theme", s.handleGetTheme)
	api.POST("/theme/toggle", s.handleToggleTheme)

	s.engine = r
	return s
}

func (s *Server) Router() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
		// Streams end when ctx is cancelled so Shutdown is not held open.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go s.themes.RunCleanup(ctx, theme.CleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
