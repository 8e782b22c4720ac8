package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/markd/markd/internal/config"
	"github.com/markd/markd/internal/post/handler"
	"github.com/markd/markd/internal/post/repository"
	"github.com/markd/markd/internal/render"
	"github.com/markd/markd/internal/store"
	"github.com/markd/markd/pkg/middleware"
)

var startTime = time.Now()

// New assembles the gin engine: global middlewares, operational endpoints,
// static assets and the page routes. The store handle is injected; nothing
// here keeps global state beyond the process start time.
func New(cfg *config.Config, db *sqlx.DB) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the store answers
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{"storage": true}
		status := http.StatusOK
		state := "ready"
		if err := store.Ping(c.Request.Context(), db); err != nil {
			deps["storage"] = false
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Static("/assets", cfg.Assets.Dir)

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}
	handler.Register(r, repository.NewSQLiteRepo(db), renderer)

	return r, nil
}
