package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/averypt/personal-site/internal/chessfeed"
	"github.com/averypt/personal-site/internal/content"
	"github.com/averypt/personal-site/internal/views"
)

type fakeGames struct {
	games []chessfeed.GameRecord
}

func (f *fakeGames) Get(ctx context.Context) []chessfeed.GameRecord { return f.games }

func newTestServer(t *testing.T, games []chessfeed.GameRecord) *Server {
	t.Helper()

	blogDir := t.TempDir()
	post := `---
title: Hello World
date: 2024-05-01
summary: First post.
---
Hello from the **blog**.
`
	if err := os.WriteFile(filepath.Join(blogDir, "hello-world.md"), []byte(post), 0o644); err != nil {
		t.Fatalf("write post: %v", err)
	}

	projectsFile := filepath.Join(t.TempDir(), "projects.json")
	projects := `[{"name":"dotfiles","description":"my setup","url":"https://example.com","featured":true}]`
	if err := os.WriteFile(projectsFile, []byte(projects), 0o644); err != nil {
		t.Fatalf("write projects: %v", err)
	}

	return New(
		Config{TemplateGlob: filepath.Join("..", "..", "web", "templates", "*.html")},
		content.NewBlogStore(blogDir, nil),
		content.NewProjectStore(projectsFile, nil),
		&fakeGames{games: games},
		views.NewMemoryStore(),
		nil,
	)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexShowsPostsAndProjects(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Hello World") {
		t.Errorf("index missing latest post title: %s", body)
	}
	if !strings.Contains(body, "dotfiles") {
		t.Errorf("index missing featured project: %s", body)
	}
}

func TestBlogPostRendersMarkdownAndViews(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/blog/hello-world")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<strong>blog</strong>") {
		t.Errorf("markdown not rendered: %s", body)
	}
	if !strings.Contains(body, "1 views") {
		t.Errorf("view count missing: %s", body)
	}

	// Second visit bumps the counter.
	w = doGet(t, s, "/blog/hello-world")
	if !strings.Contains(w.Body.String(), "2 views") {
		t.Errorf("view count did not increment")
	}
}

func TestBlogPostNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/blog/no-such-post")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestChessPageListsGames(t *testing.T) {
	s := newTestServer(t, []chessfeed.GameRecord{
		{
			Platform:    chessfeed.PlatformChessCom,
			White:       "averypt",
			Black:       "rival",
			Result:      "1-0",
			Date:        "2024.06.01",
			TimeControl: "3+2",
			Opening:     "Sicilian Defense",
			URL:         "https://www.chess.com/game/live/1",
		},
	})

	w := doGet(t, s, "/chess")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"averypt", "rival", "1-0", "3+2", "Sicilian Defense", "2024.06.01"} {
		if !strings.Contains(body, want) {
			t.Errorf("chess page missing %q", want)
		}
	}
}

func TestChessPageEmpty(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/chess")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No games right now") {
		t.Errorf("empty state missing")
	}
}

func TestStaticPages(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/about", "/resume", "/jiu-jitsu", "/strength-training"} {
		if w := doGet(t, s, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/healthz")
	if w.Header().Get("X-Request-Id") == "" {
		t.Errorf("missing X-Request-Id header")
	}
}
