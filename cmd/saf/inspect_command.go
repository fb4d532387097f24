package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"saf/internal/archive"
	"saf/internal/model"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <csv>",
		Short: "Preview the items a CSV parses into without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := archive.FromCSV(args[0])
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Item", "Files", "Statements", "Title"})
			for nr, item := range a.Items {
				tw.AppendRow(table.Row{
					fmt.Sprintf("item_%03d", nr),
					len(item.Files),
					len(item.Metadata.DC.Statements),
					itemTitle(item),
				})
			}
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
			})

			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "%d item(s), input folder %s\n", len(a.Items), a.InputFolder)
			return nil
		},
	}
	return cmd
}

// itemTitle returns the item's first unqualified title statement, if any.
func itemTitle(item model.Item) string {
	for _, st := range item.Metadata.DC.Statements {
		if st.Element == "title" && st.Qualifier == "" {
			return strings.TrimSpace(st.Value)
		}
	}
	return ""
}
