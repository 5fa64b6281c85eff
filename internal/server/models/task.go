package models

import (
	"time"

	"github.com/google/uuid"
)

// Task status values.
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusReview     = "Review"
	TaskStatusDone       = "Done"
	TaskStatusCompleted  = "Completed"
)

// WorkflowTask is a unit of work, optionally linked to a case.
type WorkflowTask struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Assignee    string     `json:"assignee"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	DueDate     time.Time  `json:"due_date"`
	Priority    string     `json:"priority"`
	Description *string    `json:"description"`
	CaseID      *uuid.UUID `json:"case_id"`
	Completion  *int       `json:"completion"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
