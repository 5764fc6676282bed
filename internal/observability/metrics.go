// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts counts register/login attempts by operation and outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodiegram_auth_attempts_total",
		Help: "Total number of authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// LikeToggles counts like toggles by resulting action (liked/unliked).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodiegram_like_toggles_total",
		Help: "Total number of like toggles by resulting action",
	}, []string{"action"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodiegram_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts successfully created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodiegram_comments_created_total",
		Help: "Total number of comments created",
	})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodiegram_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
