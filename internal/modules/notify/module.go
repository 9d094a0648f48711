package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/djsar/stagepage/internal/modules/notify/application"
)

// Module represents the Notify module
type Module struct {
	notifier *application.WebhookNotifier
}

// NewModule creates the Notify module. With no webhook URL configured the
// module is disabled and Notifier returns nil.
func NewModule(webhookURL, rootDomain string, logger *logrus.Logger) *Module {
	if webhookURL == "" {
		return &Module{}
	}
	return &Module{
		notifier: application.NewWebhookNotifier(webhookURL, rootDomain, logger),
	}
}

// Notifier returns the webhook notifier, or nil when notifications are off.
func (m *Module) Notifier() *application.WebhookNotifier {
	return m.notifier
}
