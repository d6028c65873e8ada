package entity

import "time"

// Status is the task lifecycle state. Only the assignee or an admin may
// move a task between states, and only through the status update path.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Task is created by an admin on a project they own and delegated to an
// assignee. ProjectName, AssigneeName and AssigneeEmail are populated by
// joined queries for response shaping.
type Task struct {
	ID            string       `json:"id"`
	Name          string       `json:"taskName"`
	Description   string       `json:"taskDescription"`
	ProjectID     string       `json:"projectId"`
	ProjectName   string       `json:"projectName,omitempty"`
	AssignedTo    string       `json:"assignedTo"`
	AssigneeName  string       `json:"assigneeName,omitempty"`
	AssigneeEmail string       `json:"assigneeEmail,omitempty"`
	CreatedBy     string       `json:"createdBy"`
	Status        Status       `json:"status"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Attachment is a file stored in object storage and linked to a task.
type Attachment struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	URL         string    `json:"url"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
