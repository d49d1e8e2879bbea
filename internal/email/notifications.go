package email

import (
	"strings"
	"time"

	"sentimate/internal/config"
)

// Notifier sends caregiver email alerts.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// IsEnabled returns true if alerts can actually be delivered.
func (n *Notifier) IsEnabled() bool {
	return n.service.IsEnabled() && len(n.recipients()) > 0
}

// NotifyInactivity alerts the configured caregiver addresses that a user has
// gone quiet. Delivery is asynchronous; failures are logged, not returned.
func (n *Notifier) NotifyInactivity(username string, lastActivity time.Time) {
	if !n.IsEnabled() {
		return
	}

	subject, htmlBody, textBody := n.templates.InactivityAlert(username, lastActivity, n.cfg.InactivityThreshold)
	n.service.SendAsync(n.recipients(), subject, htmlBody, textBody)
}

func (n *Notifier) recipients() []string {
	var out []string
	for _, addr := range strings.Split(n.cfg.AlertEmail, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
