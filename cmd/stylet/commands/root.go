package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

func Execute() error {
	root := &cobra.Command{
		Use:   "stylet",
		Short: "Telegram bot that restyles text with Unicode variants",
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (YAML)")

	root.AddCommand(serveCmd(), applyCmd(), variantsCmd(), versionCmd())
	return root.Execute()
}
