package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/bot"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

func newBestMoveCommand() *cobra.Command {
	var (
		boardFlag     string
		playerFlag    string
		referenceFlag string
		easy          bool
		seed          uint64
	)

	cmd := &cobra.Command{
		Use:   "best-move",
		Short: "Print the computer's move for a board",
		Long: `Print the cell the computer would play for --player on --board, then
the board after that move.

The board is nine cells read row by row: X, O, and _ . or - for empty.
Cells are numbered 0 to 8. Spaces and | are ignored.

By default the hard opponent answers and scores the board for the other
mark, as it does in a game. --reference changes that mark. --easy asks the
easy opponent instead, seeded by --seed.

Examples:
  tictactoe best-move --board "XX_OO____" --player o
  tictactoe best-move --board "X__ ___ ___" --player o --reference o
  tictactoe best-move --board "XX_OO____" --player x --easy --seed 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := entity.ParseBoard(boardFlag)
			if err != nil {
				return err
			}

			player, err := entity.ParseMark(playerFlag)
			if err != nil {
				return err
			}

			if tictactoe.IsTerminal(board) {
				return apperror.ErrBoardTerminal
			}

			reference := player.Opponent()
			if referenceFlag != "" {
				if reference, err = entity.ParseMark(referenceFlag); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()

			var cell int
			if easy {
				cell = bot.NewHeuristic(rand.New(rand.NewPCG(seed, seed))).ChooseMove(board, player)
			} else {
				selector := bot.NewExhaustive(reference)
				cell = selector.ChooseMove(board, player)

				stats := selector.Stats()
				fmt.Fprintf(out, "searched %d positions, depth %d\n", stats.Nodes, stats.MaxDepth)
			}

			board[cell] = player

			fmt.Fprintf(out, "move: %d\n", cell)
			fmt.Fprintln(out, board.String())

			return nil
		},
	}

	cmd.Flags().StringVar(&boardFlag, "board", "", "Board as nine cells, e.g. XX_OO____")
	cmd.Flags().StringVar(&playerFlag, "player", "", "Mark to move: x or o")
	cmd.Flags().StringVar(&referenceFlag, "reference", "", "Mark the hard opponent scores for (default: the other mark)")
	cmd.Flags().BoolVar(&easy, "easy", false, "Ask the easy opponent")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed for the easy opponent")

	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
