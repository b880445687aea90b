package constants

import "time"

const (
	AppName            = "nourish"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/nourish/nourish.db"
	DefaultConfigFile  = "~/.config/nourish/config.yaml"
	Version            = "v0.1.0"

	// EnvDBConnection overrides the --config database target when set.
	EnvDBConnection  = "NOURISH_DB_CONNECTION"
	EnvDebug         = "NOURISH_DEBUG"
	EnvNotifyDryRun  = "NOURISH_NOTIFY_DRY_RUN"
	EnvWatchInterval = "NOURISH_WATCH_INTERVAL"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "nourish-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "nourish-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.nourish"
	TraySecretHeader       = "X-Nourish-Secret"
	TrayExecutablePrefix   = "nourish-tray"
	DefaultWatchInterval   = 30 * time.Second

	// Day progress constants
	WaterTarget      = 8
	HistoryLimit     = 7
	DoingWellStreak  = 3
	DoingWellWater   = 5
	FollowUpDelay    = time.Hour
	ReactionDuration = 4 * time.Second
	CheerDuration    = 3 * time.Second
)
