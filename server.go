package pubfolio

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pubfolio/views"
)

// Server previews a pubfolio site over HTTP. It serves the site root as
// static files and exposes the project manifest as JSON.
type Server struct {
	Echo  *echo.Echo
	Cache *ProjectCache // nil when the manifest is disabled

	app *App
}

// NewServer builds the preview server for a. The manifest is opened here so
// configuration problems surface before the listener starts.
func (a *App) NewServer() (*Server, error) {
	store, err := a.Store()
	if err != nil {
		return nil, err
	}
	s := &Server{
		Echo: echo.New(),
		app:  a,
	}
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	if store != nil {
		s.Cache = NewProjectCache(store, a.Config.ProjectCache)
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	e := s.Echo
	e.GET("/sitemap.xml", s.handleSitemap)
	e.GET("/feed.xml", s.handleFeed)
	e.GET("/api/projects", s.handleListProjects)
	e.GET("/api/projects/:slug", s.handleGetProject)
	e.Static("/", s.app.Config.Root)
}

// Start serves on Config.Addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.Echo.Start(s.app.Config.Addr)
	}()
	s.app.log.Info("preview server listening", "addr", s.app.Config.Addr, "root", s.app.Config.Root)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) listProjects() ([]ProjectSummary, error) {
	if s.Cache == nil {
		return []ProjectSummary{}, nil
	}
	return s.Cache.ListProjects()
}

func (s *Server) notFound() templ.Component {
	return views.NotFound(s.app.Site())
}

func (s *Server) serverError() templ.Component {
	return views.ServerError(s.app.Site())
}
