package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/bot"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var errComputerLost = errors.New("the hard opponent lost at least one game")

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Play the hard computer against every possible game",
		Long: `Play the hard opponent as X and as O against every sequence of
human moves and report how each game ended. Each seat is played twice:
scoring boards for the human, as in a game, and scoring them for the
computer itself. Exits non-zero if the computer lost any game.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			lost := false
			for _, computer := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
				for _, reference := range []entity.Mark{computer.Opponent(), computer} {
					report := bot.Verify(computer, reference)

					fmt.Fprintf(out, "computer %s, reference %s: %d games, %d wins, %d ties, %d losses\n",
						computer, reference, report.Games, report.Wins, report.Ties, report.Losses)

					for _, board := range report.LostGames {
						fmt.Fprintf(out, "lost:\n%s\n", board)
					}

					lost = lost || report.Losses > 0
				}
			}

			if lost {
				return errComputerLost
			}

			return nil
		},
	}
}
