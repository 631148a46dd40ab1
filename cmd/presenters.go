package cmd

import (
	"fmt"

	"github.com/CodMac/go-treesitter-uml/output"
	"github.com/spf13/cobra"
)

// PresentersCmd 列出注册的 Presenter
var PresentersCmd = &cobra.Command{
	Use:   "presenters",
	Short: "List available diagram presenters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range output.Names() {
			p, err := output.Get(name, output.DefaultOptions())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s .%s\n", name, p.FileEnding())
		}
		return nil
	},
}
