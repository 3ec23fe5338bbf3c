package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"
	"eventflow/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// UpdateRequest names every updatable field explicitly; anything else in the
// body is dropped. Absent fields keep their stored value.
type UpdateRequest struct {
	Name     *string  `json:"name"`
	Date     *string  `json:"date"`
	Location *string  `json:"location"`
	Budget   *float64 `json:"budget" validate:"omitempty,gte=0"`
}

type UpdateResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id int64, upd models.EventUpdate) (*models.Event, error)
}

func New(log *slog.Logger, event EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid ID"))
			return
		}

		log = log.With(slog.Int64("event_id", id))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		updated, err := event.UpdateEvent(id, models.EventUpdate{
			Name:     req.Name,
			Date:     req.Date,
			Location: req.Location,
			Budget:   req.Budget,
		})
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Error("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
				return
			}

			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OKWithMessage("Event Updated Successfully"),
			Event:    updated,
		})
	}
}
