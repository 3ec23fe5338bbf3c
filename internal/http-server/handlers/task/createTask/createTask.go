package createTask

import (
	"errors"
	"log/slog"
	"net/http"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type TaskRequest struct {
	Description string `json:"description" validate:"required"`
	AssignedTo  string `json:"assignedTo"`
	Deadline    string `json:"deadline"`
}

type TaskResponse struct {
	response.Response
	Task *models.Task `json:"task"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TaskCreator
type TaskCreator interface {
	CreateTask(description, assignedTo, deadline string) (*models.Task, error)
}

func New(log *slog.Logger, task TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.task.createTask.New"

		log = log.With(slog.String("op", op))

		var req TaskRequest

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

		created, err := task.CreateTask(req.Description, req.AssignedTo, req.Deadline)
		if err != nil {
			log.Error("failed to add task", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add task"))
			return
		}

		log.Info("task added", slog.Int64("id", created.ID))

		render.JSON(w, r, TaskResponse{
			Response: response.OKWithMessage("Task Added Successfully"),
			Task:     created,
		})
	}
}
