package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"vitrine-backend/internal/contacts"
)

const contactRequestTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New {{.RequestType}} request</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{- if .Company}}
  <p><strong>Company:</strong> {{.Company}}</p>
  {{- end}}
  {{- if .Phone}}
  <p><strong>Phone:</strong> {{.Phone}}</p>
  {{- end}}
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var contactRequestTmpl = template.Must(template.New("contact_request").Parse(contactRequestTemplate))

func buildContactRequestHTML(item contacts.ContactRequest) (string, error) {
	var buf bytes.Buffer
	if err := contactRequestTmpl.Execute(&buf, item); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// StaffNotifier alerts the team inbox about new contact requests.
type StaffNotifier struct {
	client  *BrevoClient
	to      string
	appName string
}

// NewStaffNotifier returns nil when mail is disabled or no inbox is configured.
func NewStaffNotifier(client *BrevoClient, to, appName string) *StaffNotifier {
	if client == nil || strings.TrimSpace(to) == "" {
		return nil
	}
	return &StaffNotifier{client: client, to: to, appName: appName}
}

func (n *StaffNotifier) SendContactRequestNotification(ctx context.Context, item contacts.ContactRequest) (string, error) {
	if n == nil {
		return "", errors.New("staff notifier is nil")
	}
	subject := fmt.Sprintf("[%s] New %s request from %s", n.appName, item.RequestType, item.Name)
	htmlBody, err := buildContactRequestHTML(item)
	if err != nil {
		return "", err
	}
	return n.client.Send(ctx, Message{
		To:      Address{Email: n.to, Name: n.appName},
		ReplyTo: &Address{Email: item.Email, Name: item.Name},
		Subject: subject,
		HTML:    htmlBody,
		Tags:    []string{"contact-request", item.RequestType},
	})
}
