package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/grc-tools/posture-atlas/pkg/handlers/grc"
	postureatlasmiddleware "github.com/grc-tools/posture-atlas/pkg/server/middleware"
)

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    grc.Dependencies
	Logger          zerolog.Logger
}

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

// ConfigureRouter builds the API router. Split out from NewWebAPI so tests
// can mount it on httptest servers.
func ConfigureRouter(config Config) *chi.Mux {
	handler := grc.NewHandler(config.Dependencies)

	router := chi.NewRouter()
	router.Use(postureatlasmiddleware.Logger(&config.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/clients", handler.ListClients)

		r.Route("/clients/{clientID}", func(r chi.Router) {
			r.Get("/findings", handler.ListFindings)
			r.Get("/findings/metrics", handler.GetFindingMetrics)

			r.Get("/risks", handler.ListRisks)
			r.Post("/risks", handler.CreateRisk)
			r.Get("/risks/stats", handler.GetRiskStats)
			r.Put("/risks/{riskID}", handler.UpdateRisk)
			r.Delete("/risks/{riskID}", handler.DeleteRisk)
			r.Post("/risks/{riskID}/objectives", handler.CreateObjectiveFromRisk)

			r.Get("/assessments", handler.ListAssessments)
			r.Post("/assessments", handler.CreateAssessment)
			r.Post("/assessments/{assessmentID}/findings/{findingID}/promote", handler.PromoteFinding)

			r.Get("/objectives", handler.ListObjectives)

			r.Get("/initiatives", handler.ListInitiatives)
			r.Put("/initiatives/{initiativeID}/milestones/{milestoneID}", handler.UpdateMilestone)

			r.Get("/dashboard", handler.GetExecutiveDashboard)
			r.Get("/compliance", handler.GetComplianceReport)
			r.Get("/trends", handler.GetTrendAnalysis)
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	return &WebAPI{
		router: router,
		logger: &config.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
