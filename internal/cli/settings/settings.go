package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/notifier"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool   `help:"Enable or disable reminders."`
	GracePeriod          *int    `help:"Minutes after which an undelivered reminder is dropped."`
	Locale               *string `help:"Language for reminders and messages (en, tr)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Locale:                %s\n", settings.Locale)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Grace Period:          %d min\n", settings.NotificationGracePeriodMin)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.GracePeriod != nil {
		if *c.GracePeriod <= 0 {
			return fmt.Errorf("grace period must be positive, got %d", *c.GracePeriod)
		}
		settings.NotificationGracePeriodMin = *c.GracePeriod
		updated = true
	}
	if c.Locale != nil {
		locale := strings.ToLower(strings.TrimSpace(*c.Locale))
		if !slices.Contains(notifier.SupportedLocales(), locale) {
			return fmt.Errorf("unsupported locale %q (supported: %s)", *c.Locale, strings.Join(notifier.SupportedLocales(), ", "))
		}
		settings.Locale = locale
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
		if c.Locale != nil {
			fmt.Println("Reminders already scheduled keep their language until the next plan.")
		}
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
