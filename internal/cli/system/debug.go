package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
)

type DebugCmd struct {
	DBPath        DebugDBPathCmd        `cmd:"" name:"db-path" help:"Show database path."`
	DumpState     DebugDumpStateCmd     `cmd:"" help:"Dump the day state as JSON."`
	DumpReminders DebugDumpRemindersCmd `cmd:"" help:"Dump reminder rows as JSON."`
	DumpSettings  DebugDumpSettingsCmd  `cmd:"" help:"Dump settings as JSON."`
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx.Engine().Snapshot())
}

type DebugDumpRemindersCmd struct {
	All bool `help:"Include reminders that were already sent."`
}

func (cmd *DebugDumpRemindersCmd) Run(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetReminders(cmd.All)
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	return printJSON(reminders)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return printJSON(settings)
}
