package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vanta/internal/application/commands"
)

var (
	descriptionFlag string
	tagFlags        []string
	coverFlag       string
	suggestNameFlag bool
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project",
	Long: `Create a new project. It is appended to the catalog with no tracks.

Tags come from the genre vocabulary (Synthwave, Ambient, Lo-Fi, ...).

Examples:
  vanta-cli create "Night Drive" --tag Synthwave --tag Ambient
  vanta-cli create --suggest-name -d "Late night demos"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		createCmd := commands.NewCreateProjectCommand(GetWorkspace(), name, descriptionFlag, tagFlags)
		createCmd.CoverURL = coverFlag
		createCmd.SuggestName = suggestNameFlag

		res, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		return printResult(cmd, res.Project, func(w io.Writer) {
			fmt.Fprintln(w, res.Message)
		})
	},
}

func init() {
	createCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "project description")
	createCmd.Flags().StringArrayVarP(&tagFlags, "tag", "t", nil, "genre tag (repeatable)")
	createCmd.Flags().StringVar(&coverFlag, "cover", "", "cover image URI")
	createCmd.Flags().BoolVar(&suggestNameFlag, "suggest-name", false, "use a generated project name")
	rootCmd.AddCommand(createCmd)
}
