package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jekabolt/sales-panel/internal/apisrv/admin"
	"github.com/jekabolt/sales-panel/internal/auth/jwt"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/ingest"
	"github.com/jekabolt/sales-panel/internal/metrics"
	"github.com/jekabolt/sales-panel/internal/middleware"
	"github.com/jekabolt/sales-panel/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	JWTSecret      string           `mapstructure:"jwt_secret"`
	WebhookTimeout time.Duration    `mapstructure:"webhook_timeout"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	admin   *admin.Server
	ingest  *ingest.Ingester
	repo    dependency.Repository
	metrics *metrics.Registry
	limiter *ratelimit.MultiKeyLimiter
	jwtAuth *jwtauth.JWTAuth
	done    chan struct{}
}

// New creates a new server. m may be nil, then /metrics is not served.
func New(config *Config, adminServer *admin.Server, ingester *ingest.Ingester, repo dependency.Repository, m *metrics.Registry) *Server {
	if config.WebhookTimeout <= 0 {
		config.WebhookTimeout = 10 * time.Second
	}
	return &Server{
		c:       config,
		admin:   adminServer,
		ingest:  ingester,
		repo:    repo,
		metrics: m,
		limiter: ratelimit.NewMultiKeyLimiter(&config.RateLimit),
		jwtAuth: jwt.New(config.JWTSecret),
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Accept-Encoding"},
		MaxAge:         300,
	}))
	r.Use(chimw.RequestID)
	r.Use(middleware.ClientIdentifier)
	r.Use(middleware.RequestLog)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.healthz)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.With(middleware.RateLimit(s.limiter, ratelimit.KindWebhook)).
		Post("/webhooks/marketplace", s.marketplaceWebhook)

	r.Route("/api", func(r chi.Router) {
		r.Use(jwt.WithAuth(s.jwtAuth))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(s.limiter, ratelimit.KindRead))
			r.Get("/orders", s.listOrders)
			r.Get("/orders/{id}", s.getOrder)
			r.Get("/products", s.listProducts)
			r.Get("/products/{id}", s.getProduct)
			r.Get("/reports/daily", s.salesSeries)
			r.Get("/reports/summary", s.salesSummary)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(s.limiter, ratelimit.KindWrite))
			r.Put("/orders/{id}/freight", s.updateFreight)
			r.Post("/products", s.addProduct)
			r.Put("/products/{id}", s.updateProduct)
			r.Delete("/products/{id}", s.deleteProduct)
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("sales-panel new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		s.limiter.Close()
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
