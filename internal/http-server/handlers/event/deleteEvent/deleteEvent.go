package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(id int64) error
}

func New(log *slog.Logger, event EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid ID"))
			return
		}

		log = log.With(slog.Int64("event_id", id))

		err = event.DeleteEvent(id)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Error("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
				return
			}

			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.OKWithMessage("Event Deleted Successfully"))
	}
}
