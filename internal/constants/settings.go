package constants

const (
	// Setting keys
	SettingNotificationsEnabled       = "notifications_enabled"
	SettingNotificationGracePeriodMin = "notification_grace_period_min"
	SettingLocale                     = "locale"

	// State keys
	KeyWakeUpTime  = "wake_up_time"
	KeySchedule    = "schedule"
	KeyEatenStatus = "eaten_status"
	KeyWaterCount  = "water_count"
	KeyStreak      = "streak"

	// Default Settings Values
	DefaultNotificationsEnabled       = true
	DefaultNotificationGracePeriodMin = 10
	DefaultLocale                     = "en"
)
