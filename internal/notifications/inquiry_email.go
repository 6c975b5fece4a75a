package notifications

import (
	"bytes"
	"html/template"
)

const inquiryNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>A new inquiry was submitted on the website:</p>
  <ul>
    <li>Name: {{.FirstName}} {{.LastName}}</li>
    <li>Email: {{.Email}}</li>
    {{if .Phone}}<li>Phone: {{.Phone}}</li>{{end}}
    <li>Submitted: {{.SubmittedAt}}</li>
  </ul>
  <p>Message:</p>
  <p>{{.Message}}</p>
</body>
</html>`

var inquiryNotificationTmpl = template.Must(template.New("inquiry_notification").Parse(inquiryNotificationTemplate))

type InquiryNotification struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Message     string
	SubmittedAt string
}

func buildInquiryNotificationHTML(data InquiryNotification) (string, error) {
	var buf bytes.Buffer
	if err := inquiryNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
