package createEvent

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Budget accepts numbers and numeric strings; anything else counts as 0,
// matching what the dashboard has always been allowed to send.
type Budget float64

func (b *Budget) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*b = Budget(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*b = Budget(f)
			return nil
		}
	}

	*b = 0

	return nil
}

type EventRequest struct {
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"required"`
	Budget   Budget `json:"budget" validate:"omitempty,gte=0"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(name, date, location string, budget float64) (*models.Event, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
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

		created, err := event.CreateEvent(req.Name, req.Date, req.Location, float64(req.Budget))
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int64("id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OKWithMessage("Event Added Successfully"),
		Event:    event,
	})
}
