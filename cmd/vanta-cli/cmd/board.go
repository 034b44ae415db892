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

var (
	projectFlag string
	addFlags    []string
	moodFlags   []string
	deleteFlags []string
	inspireFlag bool
	promoteFlag []int
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show and edit a project's vision board",
	Long: `Show a vision board, applying any edits first.

Edits run in this order: delete, add, mood, inspire, promote. Promote takes
the 1-based position of a suggestion produced by --inspire.

Examples:
  vanta-cli board
  vanta-cli board -p 2 --add "idea:Sidechain the pads"
  vanta-cli board --inspire --promote 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ws := GetWorkspace()

		for _, id := range deleteFlags {
			res, err := commands.NewDeleteNoteCommand(ws, projectFlag, id).Execute(ctx)
			if err != nil {
				return err
			}
			logStep(cmd, res.Message)
		}

		for _, arg := range addFlags {
			noteType, content, ok := strings.Cut(arg, ":")
			if !ok {
				noteType, content = "note", arg
			}
			res, err := commands.NewAddNoteCommand(ws, projectFlag, noteType, content).Execute(ctx)
			if err != nil {
				return err
			}
			logStep(cmd, res.Message)
		}

		for _, mood := range moodFlags {
			res, err := commands.NewAddMoodCommand(ws, projectFlag, mood).Execute(ctx)
			if err != nil {
				return err
			}
			logStep(cmd, res.Message)
		}

		if inspireFlag {
			res, err := commands.NewGenerateSuggestionsCommand(ws, projectFlag).Execute(ctx)
			if err != nil {
				return err
			}
			logStep(cmd, res.Message)
		}

		if len(promoteFlag) > 0 {
			current, err := commands.NewShowBoardCommand(ws, projectFlag).Execute(ctx)
			if err != nil {
				return err
			}
			for _, n := range promoteFlag {
				if n < 1 || n > len(current.Suggestions) {
					return fmt.Errorf("no suggestion #%d (have %d, use --inspire)", n, len(current.Suggestions))
				}
			}
			for _, n := range promoteFlag {
				res, err := commands.NewPromoteSuggestionCommand(ws, projectFlag, current.Suggestions[n-1]).Execute(ctx)
				if err != nil {
					return err
				}
				logStep(cmd, res.Message)
			}
		}

		res, err := commands.NewShowBoardCommand(ws, projectFlag).Execute(ctx)
		if err != nil {
			return err
		}

		return printResult(cmd, boardOutput{
			ProjectID:   res.ProjectID,
			ProjectName: res.ProjectName,
			Notes:       res.Notes,
			Suggestions: res.Suggestions,
		}, func(w io.Writer) {
			fmt.Fprintln(w, res.Message)
			for _, n := range res.Notes {
				fmt.Fprintf(w, "  %s [%s] %s\n", n.ID, n.Type.Label(), n.Content)
			}
			if len(res.Suggestions) > 0 {
				fmt.Fprintln(w, "Suggestions")
				for i, s := range res.Suggestions {
					fmt.Fprintf(w, "  %d. %s\n", i+1, s)
				}
			}
		})
	},
}

type boardOutput struct {
	ProjectID   string        `json:"projectId" yaml:"projectId"`
	ProjectName string        `json:"projectName" yaml:"projectName"`
	Notes       []domain.Note `json:"notes" yaml:"notes"`
	Suggestions []string      `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// logStep reports an edit on stderr so structured stdout stays parseable
func logStep(cmd *cobra.Command, msg string) {
	fmt.Fprintln(cmd.ErrOrStderr(), msg)
}

func init() {
	boardCmd.Flags().StringVarP(&projectFlag, "project", "p", "", "project ID (default first project)")
	boardCmd.Flags().StringArrayVar(&addFlags, "add", nil, "add a note as TYPE:CONTENT (repeatable)")
	boardCmd.Flags().StringArrayVar(&moodFlags, "mood", nil, "add a mood from the vocabulary (repeatable)")
	boardCmd.Flags().StringArrayVar(&deleteFlags, "delete", nil, "delete a note by ID (repeatable)")
	boardCmd.Flags().BoolVar(&inspireFlag, "inspire", false, "generate production suggestions")
	boardCmd.Flags().IntSliceVar(&promoteFlag, "promote", nil, "promote suggestions by position")
	rootCmd.AddCommand(boardCmd)
}
