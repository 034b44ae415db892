package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vanta/internal/application/commands"
	"vanta/internal/domain"
)

var viewModeFlag string

var projectsCmd = &cobra.Command{
	Use:     "projects [query]",
	Aliases: []string{"ls"},
	Short:   "List projects",
	Long: `List the projects in the catalog.

A query keeps projects whose name or description contains it, ignoring case.

Examples:
  vanta-cli projects
  vanta-cli projects synth --view list
  vanta-cli projects -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		listCmd := commands.NewListProjectsCommand(GetWorkspace(), query, viewModeFlag)
		res, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		return printResult(cmd, res.Projects, func(w io.Writer) {
			if len(res.Projects) == 0 {
				fmt.Fprintln(w, "No projects match your search")
				return
			}
			fmt.Fprintln(w, res.Message)
			for _, p := range res.Projects {
				printProject(w, p, res.ViewMode)
			}
		})
	},
}

func printProject(w io.Writer, p domain.Project, mode domain.ViewMode) {
	if mode == domain.ViewModeList {
		fmt.Fprintf(w, "%s  %-20s %-9s %s\n", p.ID, p.Name, p.TrackLabel(), p.LastModified)
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", p.Initial(), p.Name)
	fmt.Fprintf(w, "    %s\n", p.Description)
	fmt.Fprintf(w, "    %s • %s", p.TrackLabel(), p.LastModified)
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, " • #%s", strings.Join(p.Tags, " #"))
	}
	fmt.Fprintln(w)
}

func init() {
	projectsCmd.Flags().StringVar(&viewModeFlag, "view", "", "layout: grid or list (default from config)")
	rootCmd.AddCommand(projectsCmd)
}
