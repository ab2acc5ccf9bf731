package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stylet/internal/catalog"
	"stylet/internal/domain"
	"stylet/internal/transcode"
)

func applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <variant> <text>...",
		Short: "Restyle text with a variant and print it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			code := domain.VariantCode(args[0])
			if !cat.Has(code) {
				byLabel, ok := cat.ByLabel(args[0])
				if !ok {
					return fmt.Errorf("unknown variant %q (try: stylet variants)", args[0])
				}
				code = byLabel
			}
			text := strings.Join(args[1:], " ")
			fmt.Fprintln(cmd.OutOrStdout(), transcode.New(cat).Apply(text, code))
			return nil
		},
	}
}
