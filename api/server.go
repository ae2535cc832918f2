/*
server.go - HTTP server setup and route registration

ROUTE MAP:
  GET    /healthz

  GET    /api/interns
  POST   /api/interns
  GET    /api/interns/{id}
  PUT    /api/interns/{id}
  DELETE /api/interns/{id}
  PUT    /api/interns/{id}/status
  GET    /api/interns/{id}/summary
  GET    /api/interns/{id}/logs
  POST   /api/interns/{id}/logs
  POST   /api/interns/{id}/absences
  DELETE /api/interns/{id}/absences/{index}

  PUT    /api/logs/{id}
  DELETE /api/logs/{id}

  GET    /api/batches
  POST   /api/batches
  POST   /api/batches/reassign
  PUT    /api/batches/{id}
  DELETE /api/batches/{id}

  GET    /api/roles
  POST   /api/roles
  PUT    /api/roles/{id}
  DELETE /api/roles/{id}

  GET    /api/tasks
  POST   /api/tasks
  PUT    /api/tasks/{id}
  DELETE /api/tasks/{id}

  GET    /api/accomplishments        (?owner= / ?task= filters)
  POST   /api/accomplishments
  PUT    /api/accomplishments/{id}
  DELETE /api/accomplishments/{id}
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter assembles the chi router with middleware and all routes.
func NewRouter(h *Handler, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", userHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/interns", func(r chi.Router) {
			r.Get("/", h.ListInterns)
			r.Post("/", h.CreateIntern)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetIntern)
				r.Put("/", h.UpdateIntern)
				r.Delete("/", h.DeleteIntern)
				r.Put("/status", h.TransitionIntern)
				r.Get("/summary", h.InternSummary)
				r.Get("/logs", h.ListInternLogs)
				r.Post("/logs", h.SubmitInternLog)
				r.Post("/absences", h.RecordAbsence)
				r.Delete("/absences/{index}", h.RemoveAbsence)
			})
		})

		r.Route("/logs", func(r chi.Router) {
			r.Put("/{id}", h.UpdateLog)
			r.Delete("/{id}", h.DeleteLog)
		})

		r.Route("/batches", func(r chi.Router) {
			r.Get("/", h.ListBatches)
			r.Post("/", h.CreateBatch)
			r.Post("/reassign", h.ReassignBatches)
			r.Put("/{id}", h.UpdateBatch)
			r.Delete("/{id}", h.DeleteBatch)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", h.ListRoles)
			r.Post("/", h.CreateRole)
			r.Put("/{id}", h.UpdateRole)
			r.Delete("/{id}", h.DeleteRole)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.ListTasks)
			r.Post("/", h.CreateTask)
			r.Put("/{id}", h.UpdateTask)
			r.Delete("/{id}", h.DeleteTask)
		})

		r.Route("/accomplishments", func(r chi.Router) {
			r.Get("/", h.ListAccomplishments)
			r.Post("/", h.CreateAccomplishment)
			r.Put("/{id}", h.UpdateAccomplishment)
			r.Delete("/{id}", h.DeleteAccomplishment)
		})
	})

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
