package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/internal/transport/middleware"
)

// RouterDeps lists the handlers and settings the router mounts. Review and
// Censor may be nil; their routes are then not mounted.
type RouterDeps struct {
	Health   *HealthHandler
	Feedback *FeedbackHandler
	Review   *ReviewHandler
	Censor   *CensorHandler

	Limiter     *middleware.RateLimiter
	AdminKey    string
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	ServiceName string
	Logger      *slog.Logger
}

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Kind: domain.KindNotFound, Message: "route not found"}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: errorDetail{Kind: domain.KindValidation, Message: "method not allowed"}})
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Limit(d.RateLimit.RequestsPerMinute))
		}
		r.Post("/submit-feedback", d.Feedback.Submit)
		r.Post("/api/feedback", d.Feedback.Submit)
	})
	r.Get("/api/feedback/public", d.Feedback.ListPublic)

	if d.AdminKey != "" && (d.Review != nil || d.Censor != nil) {
		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middleware.AdminKey(d.AdminKey))

			if d.Review != nil {
				r.Route("/feedback", func(r chi.Router) {
					r.Get("/", d.Review.List)
					r.Get("/stats", d.Review.Stats)
					r.Post("/bulk-verify", d.Review.BulkVerify)
					r.Post("/bulk-unverify", d.Review.BulkUnverify)
					r.Get("/{id}", d.Review.Get)
					r.Post("/{id}/verify", d.Review.Verify)
					r.Post("/{id}/unverify", d.Review.Unverify)
				})
			}

			if d.Censor != nil {
				r.Route("/censor", func(r chi.Router) {
					r.Get("/words", d.Censor.ListWords)
					r.Post("/words", d.Censor.AddWord)
					r.Delete("/words/{word}", d.Censor.RemoveWord)
					r.Post("/reload", d.Censor.Reload)
					r.Get("/stats", d.Censor.Stats)
				})
			}
		})
	}

	return otelhttp.NewHandler(r, d.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
