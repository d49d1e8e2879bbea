package jobs

import (
	"context"
	"log"
	"time"

	"sentimate/internal/chatbot"
	"sentimate/internal/db"
	"sentimate/internal/email"
	"sentimate/internal/metrics"
	"sentimate/internal/models"
)

// InactivityWatcher checks in on users who have gone quiet: it drops a
// friendly bot message into their chat history and optionally alerts
// caregivers by email.
type InactivityWatcher struct {
	db        *db.DB
	notifier  *email.Notifier
	threshold time.Duration
	interval  time.Duration
}

// NewInactivityWatcher creates a new inactivity watcher.
func NewInactivityWatcher(database *db.DB, notifier *email.Notifier, threshold, interval time.Duration) *InactivityWatcher {
	return &InactivityWatcher{
		db:        database,
		notifier:  notifier,
		threshold: threshold,
		interval:  interval,
	}
}

// Start begins the background watch loop.
func (w *InactivityWatcher) Start(ctx context.Context) {
	log.Printf("Inactivity watcher started (threshold: %v, interval: %v)", w.threshold, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Inactivity watcher stopped")
			return
		case <-ticker.C:
			w.checkAll(ctx)
		}
	}
}

// checkAll processes every user past the inactivity threshold who has not
// yet been alerted for their current quiet period.
func (w *InactivityWatcher) checkAll(ctx context.Context) {
	inactive, err := w.db.GetInactiveUsers(ctx, w.threshold)
	if err != nil {
		log.Printf("Inactivity watcher: failed to get inactive users: %v", err)
		return
	}

	for _, activity := range inactive {
		select {
		case <-ctx.Done():
			return
		default:
		}

		lang, err := w.db.GetPreferenceOrDefault(ctx, activity.UserID, models.PrefLanguage, string(chatbot.LanguageEnglish))
		if err != nil {
			lang = string(chatbot.LanguageEnglish)
		}

		msg := &models.ChatMessage{
			UserID:   activity.UserID,
			Sender:   models.SenderBot,
			Message:  checkInText(chatbot.Language(lang)),
			Language: lang,
		}
		if err := w.db.SaveMessage(ctx, msg); err != nil {
			log.Printf("Inactivity watcher: failed to message %s: %v", activity.Username, err)
			continue
		}

		if err := w.db.MarkAlerted(ctx, activity.UserID); err != nil {
			log.Printf("Inactivity watcher: failed to mark %s alerted: %v", activity.Username, err)
			continue
		}

		metrics.RecordInactivityAlert()
		log.Printf("Inactivity check-in sent to %s (last activity %v)", activity.Username, activity.LastActivity)

		if w.notifier != nil {
			w.notifier.NotifyInactivity(activity.Username, activity.LastActivity)
		}
	}
}

func checkInText(lang chatbot.Language) string {
	if lang == chatbot.LanguageTamil {
		return "சிறிது நேரமாக உங்களிடமிருந்து செய்தி இல்லை. நலமா? நான் இங்கே இருக்கிறேன், பேசலாம்!"
	}
	return "I haven't heard from you in a little while. Is everything okay? I'm here if you'd like to chat!"
}
