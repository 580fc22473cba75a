package cli

import (
	"fmt"
	"strings"

	"github.com/ppiankov/gostcite/internal/format"
	"github.com/spf13/cobra"
)

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported source kinds and their templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, kind := range format.DefaultRegistry().Kinds() {
			tmpl, err := format.TemplateFor(kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n", kind)
			fmt.Fprintf(out, "  template:     %s\n", tmpl)
			fmt.Fprintf(out, "  placeholders: %s\n\n", strings.Join(format.Placeholders(tmpl), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
