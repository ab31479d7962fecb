package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grievance-portal/gateway/internal/api/pages"
)

// pagesCmd prints the browser page table.
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List browser pages and the roles they require",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := pages.Default()
		if err != nil {
			return err
		}
		return printPages(cmd.OutOrStdout(), table)
	},
}

func printPages(out io.Writer, table *pages.Table) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tACCESS")
	for _, p := range table.Pages() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Path, p.Name, access(p))
	}
	return w.Flush()
}

func access(p pages.Page) string {
	if p.Public {
		return "public"
	}
	if len(p.Roles) == 0 {
		return "any role"
	}
	names := make([]string, len(p.Roles))
	for i, r := range p.Roles {
		names[i] = string(r)
	}
	return strings.Join(names, ",")
}
