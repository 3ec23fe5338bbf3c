package login

import (
	"errors"
	"log/slog"
	"net/http"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/auth/password"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"
	"eventflow/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Email shape is not checked here: a malformed address is treated like any
// other unknown account and gets the same 401.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser is the sanitized user shape returned to the dashboard: no email,
// no password hash.
type LoginUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginResponse struct {
	response.Response
	User LoginUser `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByEmail(email string) (*models.User, error)
}

func New(log *slog.Logger, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

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

		user, err := users.GetUserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("login rejected: unknown email")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid credentials"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err = password.Compare(user.PasswordHash, req.Password); err != nil {
			log.Info("login rejected: wrong password")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid credentials"))
			return
		}

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			User: LoginUser{
				ID:   user.ID,
				Name: user.Name,
				Role: user.Role,
			},
		})
	}
}
