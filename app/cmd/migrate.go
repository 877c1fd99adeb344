package cmd

import (
	"arcana/bootstrap"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CmdMigrate 创建或更新数据表
var CmdMigrate = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap.SetupDB(); err != nil {
			return err
		}
		if err := bootstrap.MigrateDB(); err != nil {
			return err
		}
		color.Green("Migration completed")
		return nil
	},
}
