// Package notify sends desktop notifications.
package notify

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"

	"taskpomodoro/internal/session"
)

const titlePrefix = "TaskPomodoro"

type Notifier interface {
	Notify(title, body string) error
}

// Message is a notification title/body pair.
type Message struct {
	Title string
	Body  string
}

func HourlyUpdate(hours int) Message {
	return Message{
		Title: titlePrefix + " - Work Update",
		Body:  fmt.Sprintf("You have been working for %s! Keep it up!", session.HoursText(hours)),
	}
}

func RestComplete() Message {
	return Message{
		Title: titlePrefix + " - Rest Complete!",
		Body:  "Your rest time is over. Time to get back to work!",
	}
}

// Send delivers m through n.
func Send(n Notifier, m Message) error {
	return n.Notify(m.Title, m.Body)
}

// Desktop notifies through the OS notification service and falls back to
// the fyne app when that fails.
type Desktop struct {
	app  fyne.App
	send func(title, body string) error
	log  *slog.Logger
}

// NewDesktop returns a Desktop notifier. app may be nil, which disables
// the fallback.
func NewDesktop(app fyne.App, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{
		app:  app,
		send: beeepNotify,
		log:  logger,
	}
}

func (d *Desktop) Notify(title, body string) error {
	err := d.send(title, body)
	if err == nil {
		return nil
	}
	if d.app == nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	d.log.Debug("desktop notification failed, using app notification", "error", err)
	d.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}

func beeepNotify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }
