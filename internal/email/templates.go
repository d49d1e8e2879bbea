package email

import (
	"fmt"
	"html"
	"time"

	"sentimate/internal/config"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #7c3aed; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        .value { color: #6b7280; }
        .warning { color: #d97706; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by Sentimate</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content, t.cfg.BaseURL, t.cfg.BaseURL)
}

// InactivityAlert generates the caregiver email sent when a user has not
// interacted with the app beyond the configured threshold.
func (t *Templates) InactivityAlert(username string, lastActivity time.Time, threshold time.Duration) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[Sentimate] %s has been inactive", username)

	minutes := int(threshold.Minutes())
	content := fmt.Sprintf(`
        <p class="warning">%s has not used Sentimate for more than %d minutes.</p>
        <div class="info-box">
            <p><span class="label">User:</span> <span class="value">%s</span></p>
            <p><span class="label">Last activity:</span> <span class="value">%s</span></p>
        </div>
        <p>You may want to check in on them.</p>`,
		html.EscapeString(username), minutes,
		html.EscapeString(username),
		lastActivity.Format("2006-01-02 15:04:05 MST"))

	htmlBody = t.baseHTML("Inactivity Alert", content)
	textBody = fmt.Sprintf(
		"%s has not used Sentimate for more than %d minutes.\n\nLast activity: %s\n\nYou may want to check in on them.\n",
		username, minutes, lastActivity.Format("2006-01-02 15:04:05 MST"))
	return subject, htmlBody, textBody
}
