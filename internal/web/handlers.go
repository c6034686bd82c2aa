package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Posts":    s.blog.Latest(3),
		"Projects": s.projects.Featured(),
	})
}

func (s *Server) staticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{})
	}
}

func (s *Server) blogIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Posts": s.blog.All(),
	})
}

func (s *Server) blogPost(c *gin.Context) {
	slug := c.Param("slug")
	post, prev, next, found := s.blog.BySlug(slug)
	if !found {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	count, err := s.views.Hit(c.Request.Context(), slug)
	if err != nil {
		s.logger.Warn("view counter unavailable", zap.String("slug", slug), zap.Error(err))
	}

	c.HTML(http.StatusOK, "blog_post.html", gin.H{
		"Post":  post,
		"Prev":  prev,
		"Next":  next,
		"Views": count,
	})
}

func (s *Server) projectList(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Projects": s.projects.All(),
	})
}

// chess reads the TTL cache only; upstream failures show up as an empty
// games list, never as an error page.
func (s *Server) chess(c *gin.Context) {
	c.HTML(http.StatusOK, "chess.html", gin.H{
		"Games": s.games.Get(c.Request.Context()),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
