package mailer

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

var taskAssignedText = texttpl.Must(texttpl.New("task_assigned_text").Parse(
	`Hi {{.AssigneeName}},

{{.CreatorName}} assigned you a new task on project "{{.ProjectName}}":

  {{.TaskName}}
  {{.TaskDescription}}

Log in to update its status.
`))

var taskAssignedHTML = htmltpl.Must(htmltpl.New("task_assigned_html").Parse(
	`<p>Hi {{.AssigneeName}},</p>
<p><strong>{{.CreatorName}}</strong> assigned you a new task on project <strong>{{.ProjectName}}</strong>:</p>
<blockquote><p><strong>{{.TaskName}}</strong><br>{{.TaskDescription}}</p></blockquote>
<p>Log in to update its status.</p>
`))

// Render produces subject, text and HTML bodies for a known template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateTaskAssigned:
		var tb, hb bytes.Buffer
		if err = taskAssignedText.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err = taskAssignedHTML.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return fmt.Sprintf("New task assigned: %v", data["TaskName"]), tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
