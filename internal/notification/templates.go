package notification

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// registrationData feeds both registration email templates.
type registrationData struct {
	FirstName   string
	LastName    string
	UniqueID    string
	SubmittedAt string
	Nationality string
	Area        string
	TalentType  string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<html>
<body>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Thank you for registering with PromoHub. Your application has been received
and is pending review.</p>
<p>Your registration number is <strong>{{.UniqueID}}</strong>. Please quote it
in any correspondence with us.</p>
<p>Submitted on {{.SubmittedAt}}.</p>
<p>The PromoHub Team</p>
</body>
</html>`))

var adminNotifyTmpl = template.Must(template.New("adminNotify").Parse(`<html>
<body>
<p>A new talent registration was submitted.</p>
<ul>
<li>Name: {{.FirstName}} {{.LastName}}</li>
<li>Registration number: {{.UniqueID}}</li>
<li>Talent type: {{.TalentType}}</li>
<li>Nationality: {{.Nationality}}</li>
<li>Area: {{.Area}}</li>
<li>Submitted: {{.SubmittedAt}}</li>
</ul>
<p>Review the application in the admin panel.</p>
</body>
</html>`))

func renderConfirmation(d registrationData) (subject, body string, err error) {
	var sb strings.Builder
	if err := confirmationTmpl.Execute(&sb, d); err != nil {
		return "", "", fmt.Errorf("render confirmation email: %w", err)
	}
	return "Your PromoHub registration " + d.UniqueID, sb.String(), nil
}

func renderAdminNotify(d registrationData) (subject, body string, err error) {
	var sb strings.Builder
	if err := adminNotifyTmpl.Execute(&sb, d); err != nil {
		return "", "", fmt.Errorf("render admin notification email: %w", err)
	}
	return "New talent registration " + d.UniqueID, sb.String(), nil
}

func formatSubmittedAt(t time.Time) string {
	return t.Format("2 January 2006 15:04 MST")
}
