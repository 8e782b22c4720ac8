package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markd/markd/internal/post"
	"github.com/markd/markd/pkg/logger"
	"github.com/markd/markd/pkg/metrics"
)

// Repository is the read-side store contract the page handlers depend on.
type Repository interface {
	ListAll(ctx context.Context) ([]post.Post, error)
}

// Renderer is the markup projection contract the page handlers depend on.
type Renderer interface {
	Index(posts []post.Post) ([]byte, error)
	Post(p post.Post) ([]byte, error)
}

// Register wires the public page routes onto the engine.
func Register(r *gin.Engine, repo Repository, renderer Renderer) {
	h := &pages{repo: repo, renderer: renderer}
	r.GET("/", h.index)
	r.GET("/post/:slug", h.show)
}

type pages struct {
	repo     Repository
	renderer Renderer
}

func (h *pages) index(c *gin.Context) {
	posts, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		logger.Errorf("listing posts: %v", err)
		metrics.StoreFailures.Inc()
		c.String(http.StatusInternalServerError, "storage failure")
		return
	}

	html, err := h.renderer.Index(posts)
	if err != nil {
		logger.Errorf("rendering index: %v", err)
		metrics.RenderFailures.WithLabelValues("index").Inc()
		c.String(http.StatusInternalServerError, "failed to render template")
		return
	}
	metrics.PagesRendered.WithLabelValues("index").Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *pages) show(c *gin.Context) {
	slug := c.Param("slug")

	posts, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		logger.Errorf("listing posts: %v", err)
		metrics.StoreFailures.Inc()
		c.String(http.StatusInternalServerError, "storage failure")
		return
	}

	p, err := post.Resolve(slug, posts)
	if err != nil {
		c.String(http.StatusNotFound, "post %q not found", slug)
		return
	}

	html, err := h.renderer.Post(p)
	if err != nil {
		logger.Errorf("rendering post %q: %v", slug, err)
		metrics.RenderFailures.WithLabelValues("post").Inc()
		c.String(http.StatusInternalServerError, "failed to render template")
		return
	}
	metrics.PagesRendered.WithLabelValues("post").Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
