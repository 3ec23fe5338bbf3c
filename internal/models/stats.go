package models

// Stats is the dashboard aggregate. TotalEvents and ActiveVendors are counted
// from the entity tables on every read; TotalAttendees and TotalRevenue have
// no backing table and come from the stored stats row.
type Stats struct {
	TotalEvents    int64   `json:"totalEvents"`
	TotalAttendees int64   `json:"totalAttendees"`
	TotalRevenue   float64 `json:"totalRevenue"`
	ActiveVendors  int64   `json:"activeVendors"`
}
