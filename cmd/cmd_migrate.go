package cmd

import (
	"github.com/gaze-network/orb-forge/cmd/migrate"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the forge Postgres schema",
		Long:  "Apply or revert the forge Postgres migrations. Not needed when the forge runs on the badger store.",
	}
	cmd.AddCommand(
		migrate.NewMigrateUpCommand(),
		migrate.NewMigrateDownCommand(),
	)
	return cmd
}
