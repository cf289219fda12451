// Package notify sends plain-text notifications to the site administrator.
package notify

import (
	"context"
	"sync"

	"github.com/mbolis/hvac-backend/apperr"
	"github.com/mbolis/hvac-backend/config"
	"github.com/mbolis/hvac-backend/log"
	"gopkg.in/gomail.v2"
)

// Notifier delivers one message to the administrator, blocking until the
// exchange succeeds or fails.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}

// Mailer sends notifications over SMTP with STARTTLS, from the configured
// mail user to the configured admin address.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

func NewMailer(cfg config.Mail) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password),
		sender:    cfg.Username,
		recipient: cfg.AdminEmail,
	}
}

func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.WithFields(log.Fields{"to": m.recipient, "subject": subject}).Warnf("mail.send: %s", err)
		return apperr.Notification(err)
	}
	return nil
}

// Message is a notification captured by a Recorder.
type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Recorder keeps notifications in memory and logs them instead of sending.
type Recorder struct {
	Recipient string

	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) Send(ctx context.Context, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, Message{Recipient: r.Recipient, Subject: subject, Body: body})
	log.WithFields(log.Fields{"to": r.Recipient, "subject": subject}).Info("notification not sent (dry run)")
	return nil
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Message(nil), r.messages...)
}
