package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rri/transport/http/response"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
}

type Handler struct {
	db Pinger
}

func New(db Pinger) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Ping)
}

// Ping reports process liveness and database reachability.
// @Summary Health check
// @Description Report server and database status.
// @Tags Health
// @Produce json
// @Success 200 {object} Status "Healthy"
// @Failure 503 {object} Status "Database unreachable"
// @Router /health [get]
func (handler *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	status := Status{Status: "ok", DB: true}
	code := http.StatusOK

	if err := handler.db.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check: database unreachable")

		status = Status{Status: "degraded", DB: false}
		code = http.StatusServiceUnavailable
	}

	response.WithJSON(w, code, status)
}
