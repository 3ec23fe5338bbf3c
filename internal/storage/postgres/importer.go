package postgres

import (
	"fmt"

	"eventflow/internal/lib/snapshot"
	"eventflow/internal/models"
)

// Snapshot import: upserts keyed by the legacy primary key, so re-running the
// migration is safe. Legacy ids are epoch-millisecond values, which is why
// every table uses BIGINT keys.

func (s *Storage) ImportUser(u snapshot.User, passwordHash string) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role`

	if _, err := s.DB.Exec(query, u.ID, u.Name, u.Email, passwordHash, u.Role); err != nil {
		return fmt.Errorf("failed to import user %d: %w", u.ID, err)
	}

	return nil
}

func (s *Storage) ImportEvent(e snapshot.Event) error {
	query := `
		INSERT INTO events (id, name, date, location, budget, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    date = EXCLUDED.date,
		    location = EXCLUDED.location,
		    budget = EXCLUDED.budget,
		    status = EXCLUDED.status`

	if _, err := s.DB.Exec(query, e.ID, e.Name, e.Date, e.Location, e.Budget, e.Status); err != nil {
		return fmt.Errorf("failed to import event %d: %w", e.ID, err)
	}

	return nil
}

func (s *Storage) ImportVendor(v snapshot.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, category, contact_person, status, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    category = EXCLUDED.category,
		    contact_person = EXCLUDED.contact_person,
		    status = EXCLUDED.status,
		    rating = EXCLUDED.rating`

	if _, err := s.DB.Exec(query, v.ID, v.Name, v.Category, v.Contact, v.Status, v.Rating); err != nil {
		return fmt.Errorf("failed to import vendor %d: %w", v.ID, err)
	}

	return nil
}

func (s *Storage) ImportTask(t snapshot.Task) error {
	query := `
		INSERT INTO tasks (id, description, assigned_to, deadline, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET description = EXCLUDED.description,
		    assigned_to = EXCLUDED.assigned_to,
		    deadline = EXCLUDED.deadline,
		    status = EXCLUDED.status`

	if _, err := s.DB.Exec(query, t.ID, t.Description, t.AssignedTo, t.Deadline, t.Status); err != nil {
		return fmt.Errorf("failed to import task %d: %w", t.ID, err)
	}

	return nil
}

// ImportStats stores only the counters without a backing entity table; event
// and vendor totals are recomputed on read.
func (s *Storage) ImportStats(st models.Stats) error {
	query := `
		INSERT INTO stats (id, total_attendees, total_revenue)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET total_attendees = EXCLUDED.total_attendees,
		    total_revenue = EXCLUDED.total_revenue`

	if _, err := s.DB.Exec(query, st.TotalAttendees, st.TotalRevenue); err != nil {
		return fmt.Errorf("failed to import stats: %w", err)
	}

	return nil
}

// ResetSequences bumps every id sequence past the largest imported id so rows
// created after a migration cannot collide with legacy keys.
func (s *Storage) ResetSequences() error {
	for _, table := range []string{"users", "events", "vendors", "tasks"} {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM %s), 1))`,
			table, table,
		)
		if _, err := s.DB.Exec(query); err != nil {
			return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
		}
	}

	return nil
}
