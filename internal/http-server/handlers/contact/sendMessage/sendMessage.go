package sendMessage

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// New logs the contact message instead of sending real mail and answers after
// the given delay, mimicking a mail round-trip for the landing page.
func New(log *slog.Logger, delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.sendMessage.New"

		log = log.With(slog.String("op", op))

		var req ContactRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log.Info("contact message received",
			slog.String("from", req.Email),
			slog.String("name", req.Name),
		)

		time.Sleep(delay)

		render.JSON(w, r, response.OKWithMessage("Email sent successfully!"))
	}
}
