package postgres

import (
	"fmt"

	"eventflow/internal/models"
)

// GetStats counts events and vendors live instead of reading stored counters,
// so the totals can never drift from the entity tables. Attendees and revenue
// have no backing table and come from the single stats row, zero if absent.
func (s *Storage) GetStats() (*models.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM vendors),
			COALESCE((SELECT total_attendees FROM stats WHERE id = 1), 0),
			COALESCE((SELECT total_revenue FROM stats WHERE id = 1), 0)`

	var stats models.Stats
	err := s.DB.QueryRow(query).Scan(
		&stats.TotalEvents,
		&stats.ActiveVendors,
		&stats.TotalAttendees,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &stats, nil
}
