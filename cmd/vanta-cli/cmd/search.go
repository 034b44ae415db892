package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vanta/internal/application/commands"
)

var categoryFlag string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tracks and projects",
	Long: `Search tracks and projects by title or tag, ignoring case.

Without a query the recent searches and trending tags are shown.

Examples:
  vanta-cli search neon
  vanta-cli search synthwave --category tracks`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			hints := commands.Hints()
			return printResult(cmd, hints, func(w io.Writer) {
				fmt.Fprintln(w, "Recent Searches")
				for _, s := range hints.Recent {
					fmt.Fprintf(w, "  %s\n", s)
				}
				fmt.Fprintln(w, "Trending Tags")
				fmt.Fprintf(w, "  #%s\n", strings.Join(hints.Trending, " #"))
			})
		}

		searchCmd := commands.NewSearchCommand(GetWorkspace(), args[0], categoryFlag)
		res, err := searchCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		return printResult(cmd, res.Results, func(w io.Writer) {
			if len(res.Results) == 0 {
				fmt.Fprintln(w, "No results found")
				return
			}
			fmt.Fprintln(w, res.Message)
			for _, r := range res.Results {
				fmt.Fprintf(w, "[%s] %s\n    %s\n", r.Kind, r.Title, r.Subtitle())
			}
		})
	},
}

func init() {
	searchCmd.Flags().StringVar(&categoryFlag, "category", "all", "filter: all, tracks or projects")
	rootCmd.AddCommand(searchCmd)
}
