package models

type Event struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Location string  `json:"location"`
	Budget   float64 `json:"budget"`
	Status   string  `json:"status"`
}

// EventUpdate carries a partial update: nil fields keep their stored value.
type EventUpdate struct {
	Name     *string
	Date     *string
	Location *string
	Budget   *float64
}
