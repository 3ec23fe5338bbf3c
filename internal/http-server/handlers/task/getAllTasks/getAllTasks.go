package getAllTasks

import (
	"log/slog"
	"net/http"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TasksGetter
type TasksGetter interface {
	GetAllTasks() ([]models.Task, error)
}

func New(log *slog.Logger, tasksGetter TasksGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.task.getAllTasks.New"

		log = log.With(slog.String("op", op))

		tasks, err := tasksGetter.GetAllTasks()
		if err != nil {
			log.Error("failed to get tasks", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tasks"))
			return
		}

		log.Info("tasks retrieved successfully", slog.Int("count", len(tasks)))

		render.JSON(w, r, tasks)
	}
}
