// Package jobs contains the background loops: medication reminder delivery
// and the inactivity watchdog.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"sentimate/internal/chatbot"
	"sentimate/internal/db"
	"sentimate/internal/metrics"
	"sentimate/internal/models"
)

// ReminderNotifier delivers medication reminders as bot messages in the
// user's chat history, where the chat page picks them up.
type ReminderNotifier struct {
	db       *db.DB
	interval time.Duration

	lastMinute string
}

// NewReminderNotifier creates a new reminder notifier.
func NewReminderNotifier(database *db.DB, interval time.Duration) *ReminderNotifier {
	return &ReminderNotifier{db: database, interval: interval}
}

// Start begins the background reminder loop.
func (r *ReminderNotifier) Start(ctx context.Context) {
	log.Printf("Reminder notifier started (interval: %v)", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder notifier stopped")
			return
		case now := <-ticker.C:
			r.deliverDue(ctx, now)
		}
	}
}

// deliverDue sends reminders scheduled for the current wall-clock minute.
// Each minute is processed at most once even when the tick interval is
// shorter than a minute.
func (r *ReminderNotifier) deliverDue(ctx context.Context, now time.Time) {
	minute := now.Format("15:04")
	if minute == r.lastMinute {
		return
	}
	r.lastMinute = minute

	due, err := r.db.GetRemindersDueAt(ctx, minute)
	if err != nil {
		log.Printf("Reminder notifier: failed to get due reminders: %v", err)
		return
	}

	for _, reminder := range due {
		select {
		case <-ctx.Done():
			return
		default:
		}

		lang, err := r.db.GetPreferenceOrDefault(ctx, reminder.UserID, models.PrefLanguage, string(chatbot.LanguageEnglish))
		if err != nil {
			lang = string(chatbot.LanguageEnglish)
		}

		msg := &models.ChatMessage{
			UserID:   reminder.UserID,
			Sender:   models.SenderBot,
			Message:  reminderText(chatbot.Language(lang), reminder.MedicineName, minute),
			Language: lang,
		}
		if err := r.db.SaveMessage(ctx, msg); err != nil {
			log.Printf("Reminder notifier: failed to deliver reminder for %s: %v", reminder.Username, err)
			continue
		}
		metrics.RecordReminderDelivered()
		log.Printf("Reminder delivered to %s: %s at %s", reminder.Username, reminder.MedicineName, minute)
	}
}

func reminderText(lang chatbot.Language, medicine, minute string) string {
	if lang == chatbot.LanguageTamil {
		return fmt.Sprintf("மருந்து நினைவூட்டல்: %s எடுக்க வேண்டிய நேரம் (%s).", medicine, minute)
	}
	return fmt.Sprintf("Medication reminder: it's time to take %s (%s).", medicine, minute)
}
