package system

import (
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
)

type MigrateCmd struct {
	Status bool `help:"Show schema version without applying migrations."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return fmt.Errorf("migrate command only supports SQL storage")
	}

	if c.Status {
		st, err := m.Runner().Status()
		if err != nil {
			return fmt.Errorf("failed to read schema status: %w", err)
		}
		fmt.Printf("Schema version: %d (latest %d, %d pending)\n", st.Current, st.Latest, len(st.Pending))
		return nil
	}

	count, err := m.Migrate(func(msg string) { fmt.Println(msg) })
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
