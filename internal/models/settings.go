package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled       bool   `json:"notifications_enabled"`         // whether reminders are scheduled at all
	NotificationGracePeriodMin int    `json:"notification_grace_period_min"` // how late a reminder may still be delivered
	Locale                     string `json:"locale"`                        // language for reminder text, e.g. "en" or "tr"
}
