package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/xab-mack/solscan/internal/rules"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "rules", Short: "Inspect available rules"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := rules.NewRegistry()
			reg.RegisterBuiltin()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Severity", "Category", "Title"})
			for _, r := range reg.Rules() {
				m := r.Meta()
				t.AppendRow(table.Row{m.ID, m.Severity, m.Category, m.Title})
			}
			t.Render()
			return nil
		},
	})
	return cmd
}
