package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventflow/internal/models"
	"eventflow/internal/storage"
)

func (s *Storage) CreateEvent(name, date, location string, budget float64) (*models.Event, error) {
	query := `
		INSERT INTO events (name, date, location, budget)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, date, location, budget, status`

	var event models.Event
	err := s.DB.QueryRow(query, name, date, location, budget).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Budget,
		&event.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, name, date, location, budget, status
		FROM events
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Location,
			&event.Budget,
			&event.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(id int64, upd models.EventUpdate) (*models.Event, error) {
	query := `
		UPDATE events
		SET name     = COALESCE($2, name),
		    date     = COALESCE($3, date),
		    location = COALESCE($4, location),
		    budget   = COALESCE($5, budget)
		WHERE id = $1
		RETURNING id, name, date, location, budget, status`

	var event models.Event
	err := s.DB.QueryRow(query, id, upd.Name, upd.Date, upd.Location, upd.Budget).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Budget,
		&event.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(id int64) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}
