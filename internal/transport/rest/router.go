package rest

import (
	"net/http"

	"github.com/atendely/dispatch-backend/internal/transport/middleware"
)

// NewRouter mounts all REST routes. API routes sit behind the auth
// middleware; health probes stay open for orchestrator checks.
func NewRouter(
	consultants *ConsultantHandler,
	protocols *ProtocolHandler,
	health *HealthHandler,
	auth middleware.Middleware,
) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /consultants/next", consultants.Next)
	api.HandleFunc("GET /consultants", consultants.List)
	api.HandleFunc("POST /consultants", consultants.Create)
	api.HandleFunc("GET /consultants/{id}", consultants.Get)
	api.HandleFunc("PUT /consultants/{id}", consultants.Update)
	api.HandleFunc("DELETE /consultants/{id}", consultants.Delete)
	api.HandleFunc("PUT /consultants/{id}/connection", consultants.Connection)

	api.HandleFunc("GET /protocols", protocols.List)
	api.HandleFunc("POST /protocols", protocols.Issue)
	api.HandleFunc("POST /protocols/generate", protocols.Generate)
	api.HandleFunc("GET /protocols/{id}", protocols.Get)
	api.HandleFunc("PUT /protocols/{id}", protocols.Update)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", health.Health)
	root.HandleFunc("GET /live", health.Live)
	root.HandleFunc("GET /ready", health.Ready)
	root.Handle("/", auth(api))

	return root
}
