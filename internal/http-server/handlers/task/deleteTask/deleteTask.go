package deleteTask

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TaskDeleter
type TaskDeleter interface {
	DeleteTask(id int64) error
}

func New(log *slog.Logger, task TaskDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.task.deleteTask.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid task id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid ID"))
			return
		}

		log = log.With(slog.Int64("task_id", id))

		err = task.DeleteTask(id)
		if err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				log.Error("task not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Task not found"))
				return
			}

			log.Error("failed to delete task", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete task"))
			return
		}

		log.Info("task deleted")

		render.JSON(w, r, response.OKWithMessage("Task Deleted Successfully"))
	}
}
