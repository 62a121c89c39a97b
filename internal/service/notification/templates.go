package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
)

var (
	submittedTmpl = template.Must(template.New("activity_submitted").Parse(`
<h2>Activity Log Submitted</h2>
<p><strong>Facilitator:</strong> {{.Facilitator.FullName}}</p>
<p><strong>Module:</strong> {{.Module.Name}} ({{.Module.Code}})</p>
<p><strong>Week:</strong> {{.WeekNumber}}, {{.Year}}</p>
{{if .SubmittedAt}}<p><strong>Submitted:</strong> {{.SubmittedAt.Format "2006-01-02 15:04"}}</p>{{end}}
<hr>
<h3>Activity Status:</h3>
<ul>
  <li>Formative One Grading: {{.FormativeOneGrading}}</li>
  <li>Formative Two Grading: {{.FormativeTwoGrading}}</li>
  <li>Summative Grading: {{.SummativeGrading}}</li>
  <li>Course Moderation: {{.CourseModeration}}</li>
  <li>Intranet Sync: {{.IntranetSync}}</li>
  <li>Grade Book Status: {{.GradeBookStatus}}</li>
</ul>
{{if .Notes}}<p><strong>Notes:</strong> {{.Notes}}</p>{{end}}
`))

	reminderTmpl = template.Must(template.New("weekly_reminder").Parse(`
<h2>Weekly Activity Log Reminder</h2>
<p>Dear {{.Name}},</p>
<p>This is a reminder that you have pending activity logs that need to be submitted.</p>
<p><strong>Deadline:</strong> {{.Deadline}}</p>
<hr>
<h3>Pending Activity Logs:</h3>
<ul>
{{range .Pending}}  <li>{{.ModuleName}} ({{.ModuleCode}}) - Week {{.WeekNumber}}, {{.Year}}</li>
{{end}}</ul>
<p>Please log into the system and submit your activity logs before the deadline.</p>
`))

	missedDeadlineTmpl = template.Must(template.New("missed_deadline").Parse(`
<h2>Activity Log Deadline Alert</h2>
<p>Dear {{.Name}},</p>
<p>A facilitator has missed the weekly activity log deadline.</p>
<hr>
<h3>Details:</h3>
<ul>
  <li><strong>Facilitator:</strong> {{.Data.FacilitatorName}}</li>
  <li><strong>Module:</strong> {{.Data.ModuleName}}</li>
  <li><strong>Week:</strong> {{.Data.WeekNumber}}, {{.Data.Year}}</li>
  <li><strong>Deadline:</strong> {{.Data.Deadline}}</li>
</ul>
<p>Please follow up with the facilitator to ensure compliance.</p>
`))

	lateSubmissionTmpl = template.Must(template.New("late_submission").Parse(`
<h2>Late Activity Log Submission</h2>
<p>Dear {{.Name}},</p>
<p>A facilitator has submitted their activity log after the deadline.</p>
<hr>
<h3>Details:</h3>
<ul>
  <li><strong>Facilitator:</strong> {{.Data.FacilitatorName}}</li>
  <li><strong>Module:</strong> {{.Data.ModuleName}}</li>
  <li><strong>Week:</strong> {{.Data.WeekNumber}}, {{.Data.Year}}</li>
  <li><strong>Submitted:</strong> {{.Data.SubmittedAt}}</li>
  <li><strong>Deadline:</strong> {{.Data.Deadline}}</li>
</ul>
`))

	genericAlertTmpl = template.Must(template.New("generic_alert").Parse(`
<h2>Activity Tracker Alert</h2>
<p>Dear {{.Name}},</p>
<p>An alert has been triggered in the activity tracker system.</p>
<p><strong>Alert Type:</strong> {{.AlertType}}</p>
<p><strong>Data:</strong> {{.DataJSON}}</p>
`))
)

type reminderContent struct {
	Name     string
	Deadline string
	Pending  []model.PendingLog
}

type alertContent struct {
	Name      string
	AlertType string
	Data      queue.AlertData
	DataJSON  string
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}
