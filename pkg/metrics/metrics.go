package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PagesRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "markd", Name: "pages_rendered_total", Help: "Number of pages rendered by page type."},
		[]string{"page"},
	)
	RenderFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "markd", Name: "render_failures_total", Help: "Number of template rendering failures by page type."},
		[]string{"page"},
	)
	StoreFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "markd", Name: "store_failures_total", Help: "Number of failed store reads on the serving path."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "markd", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "markd", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PagesRendered)
	reg.MustRegister(RenderFailures)
	reg.MustRegister(StoreFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
