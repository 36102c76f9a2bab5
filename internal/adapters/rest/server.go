package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	initializeHandler *InitializeHandler,
	chairHandler *ChairHandler,
	estateHandler *EstateHandler,
	metricsHandler http.Handler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), MetricsMiddleware, middleware.Recoverer)

	r.Post("/initialize", initializeHandler.Initialize)

	r.Route("/api", func(r chi.Router) {
		r.Route("/chair", func(r chi.Router) {
			r.Get("/low_priced", chairHandler.LowPriced)
			r.Get("/search", chairHandler.Search)
			r.Get("/search/condition", chairHandler.SearchCondition)
			r.Get("/{id}", chairHandler.GetDetails)
			r.Post("/", chairHandler.Import)
			r.Post("/buy/{id}", chairHandler.Buy)
		})

		r.Route("/estate", func(r chi.Router) {
			r.Get("/low_priced", estateHandler.LowPriced)
			r.Get("/search", estateHandler.Search)
			r.Get("/search/condition", estateHandler.SearchCondition)
			r.Get("/{id}", estateHandler.GetDetails)
			r.Post("/", estateHandler.Import)
			r.Post("/nazotte", estateHandler.Nazotte)
			r.Post("/req_doc/{id}", estateHandler.RequestDocument)
		})

		r.Get("/recommended_estate/{id}", estateHandler.Recommended)
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
