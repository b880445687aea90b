package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	m := tui.NewModel(ctx.Engine(), ctx.Messages(), ctx.Clock)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
