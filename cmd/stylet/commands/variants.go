package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylet/internal/catalog"
	"stylet/internal/transcode"
)

func variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List available variants",
		Run: func(cmd *cobra.Command, args []string) {
			cat := catalog.Default()
			tr := transcode.New(cat)
			for _, v := range cat.Variants() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-3s %-14s %s\n", v.Code, v.Label, tr.Apply("Hello", v.Code))
			}
		},
	}
}
