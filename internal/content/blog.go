package content

import (
	"bytes"
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

var errNoFrontMatter = errors.New("post has no front matter block")

var defaultPostDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Post is one rendered blog entry. Slug comes from the filename.
type Post struct {
	Slug    string
	Title   string
	Date    time.Time
	Summary string
	Tags    []string
	Body    template.HTML
}

type frontMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// BlogStore loads markdown posts with YAML front matter from a directory.
// Files are re-read on every call; the post set is small and this keeps
// edits visible without a restart.
type BlogStore struct {
	dir    string
	md     goldmark.Markdown
	logger *zap.Logger
}

func NewBlogStore(dir string, logger *zap.Logger) *BlogStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
		),
	)
	return &BlogStore{dir: dir, md: md, logger: logger}
}

// All returns every post, newest first. A missing directory or an unreadable
// file yields fewer posts, never an error.
func (s *BlogStore) All() []Post {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Debug("blog directory unavailable", zap.String("dir", s.dir), zap.Error(err))
		return nil
	}

	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		post, err := s.loadPost(path)
		if err != nil {
			s.logger.Warn("skipping blog post", zap.String("path", path), zap.Error(err))
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts
}

// Latest returns the n newest posts.
func (s *BlogStore) Latest(n int) []Post {
	posts := s.All()
	if n > 0 && len(posts) > n {
		posts = posts[:n]
	}
	return posts
}

// BySlug finds a post along with its neighbors in publication order: prev is
// the next-older post, next the next-newer one.
func (s *BlogStore) BySlug(slug string) (post Post, prev, next *Post, found bool) {
	posts := s.All()
	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}
		if i+1 < len(posts) {
			prev = &posts[i+1]
		}
		if i > 0 {
			next = &posts[i-1]
		}
		return posts[i], prev, next, true
	}
	return Post{}, nil, nil, false
}

func (s *BlogStore) loadPost(path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	fm, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return Post{}, err
	}

	var meta frontMatter
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return Post{}, err
	}

	date := defaultPostDate
	if meta.Date != "" {
		parsed, err := time.Parse("2006-01-02", meta.Date)
		if err != nil {
			s.logger.Warn("bad post date, using default",
				zap.String("path", path),
				zap.String("date", meta.Date),
			)
		} else {
			date = parsed
		}
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Post{}, err
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Post{
		Slug:    slug,
		Title:   meta.Title,
		Date:    date,
		Summary: meta.Summary,
		Tags:    meta.Tags,
		Body:    template.HTML(buf.String()),
	}, nil
}

// splitFrontMatter expects the file to open with a ----delimited metadata
// block; posts without one are not published.
func splitFrontMatter(content string) (fm, body string, err error) {
	if !strings.HasPrefix(content, frontMatterDelim) {
		return "", "", errNoFrontMatter
	}
	parts := strings.SplitN(content, frontMatterDelim, 3)
	if len(parts) < 3 {
		return "", "", errNoFrontMatter
	}
	return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}
