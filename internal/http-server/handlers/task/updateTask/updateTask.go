package updateTask

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
)

// UpdateRequest names every updatable field explicitly; anything else in the
// body is dropped. Absent fields keep their stored value.
type UpdateRequest struct {
	Description *string `json:"description"`
	AssignedTo  *string `json:"assignedTo"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status"`
}

type UpdateResponse struct {
	response.Response
	Task *models.Task `json:"task"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TaskUpdater
type TaskUpdater interface {
	UpdateTask(id int64, upd models.TaskUpdate) (*models.Task, error)
}

func New(log *slog.Logger, task TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.task.updateTask.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid task id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid ID"))
			return
		}

		log = log.With(slog.Int64("task_id", id))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		updated, err := task.UpdateTask(id, models.TaskUpdate{
			Description: req.Description,
			AssignedTo:  req.AssignedTo,
			Deadline:    req.Deadline,
			Status:      req.Status,
		})
		if err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				log.Error("task not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Task not found"))
				return
			}

			log.Error("failed to update task", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update task"))
			return
		}

		log.Info("task updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OKWithMessage("Task Updated Successfully"),
			Task:     updated,
		})
	}
}
