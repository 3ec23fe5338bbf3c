package models

type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

// TaskUpdate carries a partial update: nil fields keep their stored value.
type TaskUpdate struct {
	Description *string
	AssignedTo  *string
	Deadline    *string
	Status      *string
}
