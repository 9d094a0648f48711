package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

// WebhookNotifier posts a one-line signup announcement to a chat webhook.
// Delivery is best-effort: failures are logged and otherwise ignored, and
// the caller is expected to invoke Announce on its own goroutine so the
// signup response never waits on it.
type WebhookNotifier struct {
	webhookURL string
	rootDomain string
	client     *http.Client
	logger     *logrus.Logger
}

func NewWebhookNotifier(webhookURL, rootDomain string, logger *logrus.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		rootDomain: rootDomain,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Announce delivers the notification for one new profile.
func (n *WebhookNotifier) Announce(profile *domain.Profile) {
	payload := map[string]string{
		"text": fmt.Sprintf("Nuevo registro DJ: %s (%s.%s)", profile.StageName, profile.Subdomain, n.rootDomain),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.WithError(err).Warn("webhook payload marshal failed")
		return
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		n.logger.WithError(err).Warn("signup webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		n.logger.WithField("status", resp.StatusCode).Warn("signup webhook rejected")
	}
}
