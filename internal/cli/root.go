// Package cli wires the tictactoe commands.
//
// Usage:
//
//	tictactoe play        - Play in the terminal
//	tictactoe best-move   - Ask an opponent for its move on a board
//	tictactoe verify      - Check that the hard opponent never loses
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe in your terminal",
		Long: `Tic-tac-toe against a friend or the computer, right in the terminal.

Available commands:
  play       - Start the game
  best-move  - Print the computer's move for a board
  verify     - Play the hard computer against every possible game

Examples:
  tictactoe play
  tictactoe play --mode cpueasy --mark o
  tictactoe best-move --board "XX_OO____" --player o
  tictactoe verify`,
		SilenceUsage: true,
	}

	root.AddCommand(newPlayCommand())
	root.AddCommand(newBestMoveCommand())
	root.AddCommand(newVerifyCommand())

	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
