// termsnake is a terminal snake game.
//
// Usage:
//
//	termsnake play    - Play in the current terminal
//	termsnake serve   - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--seed <value>   - RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a classic grid snake game for the terminal.

Steer the snake with W/A/S/D or the arrow keys, eat food to grow and
avoid the walls and your own tail. The best score of the session is
shown next to the current one.

Examples:
  termsnake play
  termsnake play --config ./my-snake.yaml
  termsnake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
