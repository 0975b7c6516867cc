package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appassist "github.com/hansol-labs/compliboard/internal/application/assist"
	appcompliance "github.com/hansol-labs/compliboard/internal/application/compliance"
	appdocs "github.com/hansol-labs/compliboard/internal/application/documents"
	appsettings "github.com/hansol-labs/compliboard/internal/application/settings"
	apptasks "github.com/hansol-labs/compliboard/internal/application/tasks"
	domassist "github.com/hansol-labs/compliboard/internal/domain/assist"
	domcompliance "github.com/hansol-labs/compliboard/internal/domain/compliance"
	domdocs "github.com/hansol-labs/compliboard/internal/domain/documents"
	domtasks "github.com/hansol-labs/compliboard/internal/domain/tasks"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

type Router struct {
	docsSvc     *appdocs.Service
	controlsSvc *appcompliance.Service
	tasksSvc    *apptasks.Service
	settingsSvc *appsettings.Service
	assistSvc   *appassist.Service
}

// Options carries the cross-cutting wiring for NewRouter.
type Options struct {
	Tokens         map[string]middleware.Principal
	AllowedOrigins []string
	RateCapacity   int
	RateRefill     int
	Health         map[string]middleware.HealthChecker
	// Blobs, when set, is mounted at /blobs to serve the in-process
	// object store behind the presigned URLs of the dev profile.
	Blobs http.Handler
}

func NewRouter(
	docsSvc *appdocs.Service,
	controlsSvc *appcompliance.Service,
	tasksSvc *apptasks.Service,
	settingsSvc *appsettings.Service,
	assistSvc *appassist.Service,
	opts Options,
) http.Handler {
	r := &Router{
		docsSvc:     docsSvc,
		controlsSvc: controlsSvc,
		tasksSvc:    tasksSvc,
		settingsSvc: settingsSvc,
		assistSvc:   assistSvc,
	}
	mux := chi.NewRouter()

	if len(opts.AllowedOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.LoggingMiddleware)
	if len(opts.Tokens) > 0 {
		mux.Use(middleware.BearerAuth(opts.Tokens))
	}
	if opts.RateCapacity > 0 && opts.RateRefill > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.RateCapacity, opts.RateRefill))
	}

	mux.Get("/health", middleware.HealthHandler(opts.Health))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)
	if opts.Blobs != nil {
		mux.Mount("/blobs", http.StripPrefix("/blobs", opts.Blobs))
	}

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/documents", r.wrap(r.handleListDocuments))
		rt.Post("/documents/upload", r.wrap(r.handleUploadDocument))
		rt.Post("/documents/presigned-upload", r.wrap(r.handlePresignUpload))
		rt.Post("/documents/confirm-upload", r.wrap(r.handleConfirmUpload))
		rt.Patch("/documents/{id}", r.wrap(r.handleUpdateDocument))
		rt.Delete("/documents/{id}", r.wrap(r.handleDeleteDocument))
		rt.Get("/documents/{id}/download", r.wrap(r.handleDownloadDocument))

		rt.Get("/controls", r.wrap(r.handleListControls))
		rt.Get("/controls/stats", r.wrap(r.handleControlStats))
		rt.Get("/controls/summary", r.wrap(r.handleControlSummary))
		rt.Get("/controls/{id}", r.wrap(r.handleGetControl))
		rt.Put("/controls/{id}/status", r.wrap(r.handleSetControlStatus))
		rt.Post("/controls/{id}/assist", r.wrap(r.handleAssist))

		rt.Get("/tasks", r.wrap(r.handleListTasks))
		rt.Post("/tasks", r.wrap(r.handleCreateTask))
		rt.Get("/tasks/board", r.wrap(r.handleTaskBoard))
		rt.Patch("/tasks/{id}", r.wrap(r.handleUpdateTask))
		rt.Put("/tasks/{id}/status", r.wrap(r.handleSetTaskStatus))
		rt.Delete("/tasks/{id}", r.wrap(r.handleDeleteTask))

		rt.Get("/settings", r.wrap(r.handleGetSettings))
		rt.Put("/settings", r.wrap(r.handleUpdateSettings))
		rt.Get("/profiles", r.wrap(r.handleListProfiles))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, domdocs.ErrNotFound),
				errors.Is(err, domtasks.ErrNotFound),
				errors.Is(err, domcompliance.ErrUnknownControl),
				errors.Is(err, sql.ErrNoRows):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, domdocs.ErrValidation),
				errors.Is(err, domtasks.ErrValidation),
				errors.Is(err, domcompliance.ErrValidation),
				errors.Is(err, appsettings.ErrValidation):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, domdocs.ErrObjectMissing):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, domassist.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			case errors.Is(err, domassist.ErrUpstream):
				http.Error(w, "ai provider error", http.StatusBadGateway)
			case errors.Is(err, domassist.ErrUnavailable):
				http.Error(w, "ai assist not configured", http.StatusServiceUnavailable)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}
