package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	ListenAddr string

	BlogDir      string
	ProjectsFile string
	TemplateGlob string
	StaticDir    string

	ChessComUser    string
	LichessUser     string
	GamesPerSource  int
	GamesTotal      int
	CacheTTLSec     int
	FetchTimeoutSec int

	RedisURL string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ListenAddr:      ":8000",
		BlogDir:         "content/blog",
		ProjectsFile:    "content/projects.json",
		TemplateGlob:    "web/templates/*.html",
		StaticDir:       "web/static",
		GamesPerSource:  5,
		GamesTotal:      10,
		CacheTTLSec:     300,
		FetchTimeoutSec: 5,
	}

	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("BLOG_DIR")); v != "" {
		cfg.BlogDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PROJECTS_FILE")); v != "" {
		cfg.ProjectsFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB")); v != "" {
		cfg.TemplateGlob = v
	}
	if v := strings.TrimSpace(os.Getenv("STATIC_DIR")); v != "" {
		cfg.StaticDir = v
	}

	cfg.ChessComUser = strings.TrimSpace(os.Getenv("CHESS_COM_USER"))
	cfg.LichessUser = strings.TrimSpace(os.Getenv("LICHESS_USER"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))

	if v := strings.TrimSpace(os.Getenv("GAMES_PER_SOURCE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GamesPerSource = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GAMES_TOTAL")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GamesTotal = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GAMES_CACHE_TTL")); v != "" { // seconds
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSec = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" { // seconds
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutSec = n
		}
	}

	if cfg.ChessComUser == "" {
		return nil, errors.New("CHESS_COM_USER is required")
	}
	if cfg.LichessUser == "" {
		return nil, errors.New("LICHESS_USER is required")
	}

	return cfg, nil
}
