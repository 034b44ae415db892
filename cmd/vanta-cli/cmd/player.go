package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vanta/internal/application/commands"
	"vanta/internal/domain"
)

var (
	playFlag     bool
	likeFlag     bool
	volumeFlag   int
	progressFlag int
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Show or change the player state",
	Long: `Show the current track, optionally toggling play or like and setting
the volume or position first. There is no audio output.

Examples:
  vanta-cli player
  vanta-cli player --play --volume 40`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		playerCmd := commands.NewPlayerCommand(GetWorkspace())
		playerCmd.TogglePlay = playFlag
		playerCmd.ToggleLike = likeFlag
		if cmd.Flags().Changed("volume") {
			playerCmd.Volume = &volumeFlag
		}
		if cmd.Flags().Changed("progress") {
			playerCmd.Progress = &progressFlag
		}

		res, err := playerCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		return printResult(cmd, playerOutput{Track: res.Track, State: res.State}, func(w io.Writer) {
			fmt.Fprintln(w, res.Message)
		})
	},
}

type playerOutput struct {
	Track domain.Track            `json:"track" yaml:"track"`
	State domain.PlaybackSnapshot `json:"state" yaml:"state"`
}

func init() {
	playerCmd.Flags().BoolVar(&playFlag, "play", false, "toggle play/pause")
	playerCmd.Flags().BoolVar(&likeFlag, "like", false, "toggle like")
	playerCmd.Flags().IntVar(&volumeFlag, "volume", 0, "set volume (0-100)")
	playerCmd.Flags().IntVar(&progressFlag, "progress", 0, "set position (0-100)")
	rootCmd.AddCommand(playerCmd)
}
