package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventflow/internal/models"
	"eventflow/internal/storage"
)

func (s *Storage) CreateTask(description, assignedTo, deadline string) (*models.Task, error) {
	query := `
		INSERT INTO tasks (description, assigned_to, deadline)
		VALUES ($1, $2, $3)
		RETURNING id, description, assigned_to, deadline, status`

	var task models.Task
	err := s.DB.QueryRow(query, description, assignedTo, deadline).Scan(
		&task.ID,
		&task.Description,
		&task.AssignedTo,
		&task.Deadline,
		&task.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

func (s *Storage) GetAllTasks() ([]models.Task, error) {
	query := `
		SELECT id, description, assigned_to, deadline, status
		FROM tasks
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		err = rows.Scan(
			&task.ID,
			&task.Description,
			&task.AssignedTo,
			&task.Deadline,
			&task.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

func (s *Storage) UpdateTask(id int64, upd models.TaskUpdate) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET description = COALESCE($2, description),
		    assigned_to = COALESCE($3, assigned_to),
		    deadline    = COALESCE($4, deadline),
		    status      = COALESCE($5, status)
		WHERE id = $1
		RETURNING id, description, assigned_to, deadline, status`

	var task models.Task
	err := s.DB.QueryRow(query, id, upd.Description, upd.AssignedTo, upd.Deadline, upd.Status).Scan(
		&task.ID,
		&task.Description,
		&task.AssignedTo,
		&task.Deadline,
		&task.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

func (s *Storage) DeleteTask(id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}
