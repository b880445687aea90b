package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/cli/backups"
	"github.com/julianstephens/nourish/internal/cli/day"
	"github.com/julianstephens/nourish/internal/cli/settings"
	"github.com/julianstephens/nourish/internal/cli/system"
	"github.com/julianstephens/nourish/internal/config"
	"github.com/julianstephens/nourish/internal/constants"
	apperrors "github.com/julianstephens/nourish/internal/errors"
	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path (.db or .json), PostgreSQL connection string, or 'keyring'. For PostgreSQL, credentials must NOT be embedded in the connection string. Defaults to the config file value." type:"string"`
	Debug   bool   `help:"Write debug logs and mirror them to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize nourish storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Plan     day.PlanCmd          `cmd:"" help:"Plan today's meals and reminders from your wake-up time."`
	Eat      day.EatCmd           `cmd:"" help:"Mark a meal as eaten."`
	Water    day.WaterCmd         `cmd:"" help:"Log a glass of water."`
	Status   day.StatusCmd        `cmd:"" help:"Show today's progress."`
	History  day.HistoryCmd       `cmd:"" help:"Show recent days."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring   system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Notify    system.NotifyCmd  `cmd:"" help:"Deliver due reminders to the tray."`
	DebugCmds system.DebugCmd   `cmd:"" name:"debug" hidden:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Meal and water reminder companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config.LoadDotEnv()

	configFile, err := utils.ExpandHome(constants.DefaultConfigFile)
	if err != nil {
		apperrors.Fatal(err)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		apperrors.Fatal(err)
	}
	cfg.ApplyEnv()
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: filepath.Dir(configFile), Stderr: cfg.Debug}); err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{Config: cfg}

	// keyring works without a database; it may be the way to reach one.
	top := strings.Fields(ctx.Command())[0]
	if top != "keyring" {
		store, err := cli.OpenStore(cfg.DatabaseTarget(CLI.Config))
		if err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
		appCtx.Store = store

		// init manages its own loading; doctor reports load failures itself.
		if top != "init" && top != "doctor" {
			if err := store.Load(); err != nil {
				apperrors.Fatal(err)
			}
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		if appCtx.Store != nil {
			appCtx.Store.Close()
		}
		apperrors.Fatal(err)
	}
}
