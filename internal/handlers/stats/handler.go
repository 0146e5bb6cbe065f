package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rri/infras/otel"
	"rri/internal/domains/stats/service"
	"rri/shared/constant"
	"rri/transport/http/response"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/stats", handler.GetStats)
}

// GetStats returns the dashboard aggregates.
// @Summary Get dashboard statistics
// @Description Retrieve room occupancy, today's movements and revenue.
// @Tags Stats
// @Produce json
// @Success 200 {object} model.Overview "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /api/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats overview")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
