package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/averypt/personal-site/internal/chessfeed"
	"github.com/averypt/personal-site/internal/content"
	"github.com/averypt/personal-site/internal/views"
)

// GameSource is the cached chess feed consumed by the /chess page.
type GameSource interface {
	Get(ctx context.Context) []chessfeed.GameRecord
}

type Config struct {
	TemplateGlob string
	StaticDir    string
}

type Server struct {
	engine   *gin.Engine
	blog     *content.BlogStore
	projects *content.ProjectStore
	games    GameSource
	views    views.Store
	logger   *zap.Logger
}

func New(cfg Config, blog *content.BlogStore, projects *content.ProjectStore, games GameSource, viewStore views.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(logger))
	engine.LoadHTMLGlob(cfg.TemplateGlob)
	if cfg.StaticDir != "" {
		engine.Static("/static", cfg.StaticDir)
	}

	s := &Server{
		engine:   engine,
		blog:     blog,
		projects: projects,
		games:    games,
		views:    viewStore,
		logger:   logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.index)
	s.engine.GET("/about", s.staticPage("about.html"))
	s.engine.GET("/blog", s.blogIndex)
	s.engine.GET("/blog/:slug", s.blogPost)
	s.engine.GET("/projects", s.projectList)
	s.engine.GET("/resume", s.staticPage("resume.html"))
	s.engine.GET("/chess", s.chess)
	s.engine.GET("/jiu-jitsu", s.staticPage("jiu-jitsu.html"))
	s.engine.GET("/strength-training", s.staticPage("strength-training.html"))
	s.engine.GET("/healthz", s.health)
}

// Handler exposes the router for the http.Server in cmd and for tests.
func (s *Server) Handler() http.Handler { return s.engine }
