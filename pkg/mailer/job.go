package mailer

// TemplateTaskAssigned notifies a user that a task was delegated to them.
const TemplateTaskAssigned = "task_assigned"

// Job is the JSON payload put on the RabbitMQ queue by the API and
// consumed by the notify worker. Data feeds the named template.
type Job struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data,omitempty"`
}
