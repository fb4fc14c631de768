package pubfolio

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.listProjects()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) handleGetProject(c echo.Context) error {
	slug := c.Param("slug")
	if s.Cache == nil || !ValidSlug(slug) {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	if _, err := s.Cache.GetProject(slug); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return err
	}
	project, err := s.Cache.store.GetProject(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleSitemap(c echo.Context) error {
	projects, err := s.listProjects()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	cfg := s.app.Config
	if err := WriteSitemap(&buf, cfg.URL, cfg.PortfolioFile, cfg.ProjectsDir, projects); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

func (s *Server) handleFeed(c echo.Context) error {
	projects, err := s.listProjects()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.app.WriteFeed(&buf, projects); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", buf.Bytes())
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	api := strings.HasPrefix(c.Request().URL.Path, "/api/")
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !api {
		_ = RenderStatus(c, http.StatusNotFound, s.notFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		s.app.log.Error("server error", "uri", c.Request().RequestURI, "err", err)
		if !api {
			_ = RenderStatus(c, code, s.serverError())
			return
		}
	}
	s.Echo.DefaultHTTPErrorHandler(err, c)
}
