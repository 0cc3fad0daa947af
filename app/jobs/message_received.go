// Package jobs holds the background jobs dispatched by the web layer.
package jobs

import (
	"fmt"
	"html"

	"github.com/bkormos/portico/config"
	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/mail"
	"github.com/bkormos/portico/pkg/queue"
)

// MessageReceivedJob notifies the site admin that a contact message arrived.
type MessageReceivedJob struct {
	MessageID uint   `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Body      string `json:"body"`
}

func (j *MessageReceivedJob) Handle() error {
	to := config.AdminEmail()
	if to == "" {
		logger.Debug("no admin email configured, skipping notification", "message_id", j.MessageID)
		return nil
	}

	body := fmt.Sprintf(
		"<p>New contact message #%d from <b>%s</b> (%s):</p><blockquote>%s</blockquote>",
		j.MessageID, html.EscapeString(j.Name), html.EscapeString(j.Email), html.EscapeString(j.Body),
	)
	return mail.To(to).
		Subject(fmt.Sprintf("New contact message from %s", j.Name)).
		Body(body).
		Send()
}

// RegisterAll wires every job type into the queue registry so workers can
// rebuild them from their serialized envelopes.
func RegisterAll() {
	queue.Register("*jobs.MessageReceivedJob", func() queue.Job { return &MessageReceivedJob{} })
}
