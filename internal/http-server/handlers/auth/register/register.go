package register

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

const defaultRole = "user"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type RegisterUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterResponse struct {
	response.Response
	User RegisterUser `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(name, email, passwordHash, role string) (*models.User, error)
}

func New(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

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

		if req.Name == "" {
			req.Name = "User"
		}

		hash, err := password.Hash(req.Password)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		user, err := users.CreateUser(req.Name, req.Email, hash, defaultRole)
		if err != nil {
			if errors.Is(err, storage.ErrEmailExists) {
				log.Info("registration rejected: email taken", slog.String("email", req.Email))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Email already registered"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		log.Info("user registered", slog.Int64("user_id", user.ID))

		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			User: RegisterUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
			},
		})
	}
}
