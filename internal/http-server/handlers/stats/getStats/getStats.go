package getStats

import (
	"log/slog"
	"net/http"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	GetStats() (*models.Stats, error)
}

// New serves the dashboard aggregate as a bare JSON object.
func New(log *slog.Logger, statsProvider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.getStats.New"

		log = log.With(slog.String("op", op))

		stats, err := statsProvider.GetStats()
		if err != nil {
			log.Error("failed to get stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stats"))
			return
		}

		log.Info("stats retrieved successfully")

		render.JSON(w, r, stats)
	}
}
