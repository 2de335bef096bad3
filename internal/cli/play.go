package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

func newPlayCommand() *cobra.Command {
	var (
		configPath string
		mode       string
		mark       string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the game",
		Long: `Start the game on the start screen. --mode and --mark preselect
the button and the mark there.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Select or play the cell under the cursor
  1-9          - Play a cell directly
  X/O          - Pick your mark on the start screen
  N            - Next round after a win or a tie
  Esc          - Back to the start screen
  Q/Ctrl+C     - Quit

Modes:
  cpu      - Against the computer, hard
  cpueasy  - Against the computer, easy
  user     - 1 vs 1 on the same keyboard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)

			if cmd.Flags().Changed("mode") {
				conf.Game.Mode = mode
			}
			if cmd.Flags().Changed("mark") {
				conf.Game.Mark = mark
			}

			logFile, err := app.OpenLogFile(conf)
			if err != nil {
				return err
			}
			defer logFile.Close()

			if err = app.RunApp(app.NewLogger(conf, logFile), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yml", "Path to config YAML")
	cmd.Flags().StringVar(&mode, "mode", "", "Preselected mode: cpu, cpueasy, user")
	cmd.Flags().StringVar(&mark, "mark", "", "Preselected mark: x, o")

	return cmd
}
