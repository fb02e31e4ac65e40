// Command ptyhost-demo is a small smoke-test harness for the ptyhost
// library: it spawns a shell inside a real pseudo console/PTY and forwards
// the calling terminal's stdin/stdout to it, the same way a reader would
// expect to exercise the library by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvid-systems/ptyhost/internal/logging"
)

var (
	version = "0.1.0"

	shellFlag string
	colsFlag  uint16
	rowsFlag  uint16
	logLevel  string
)

var log = logging.L("main")

var rootCmd = &cobra.Command{
	Use:   "ptyhost-demo",
	Short: "ptyhost demo CLI",
	Long:  `ptyhost-demo exercises the ptyhost library's public Spawn/Resize/Kill facade against a real shell.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init("text", logLevel, os.Stderr)
		log = logging.L("main")
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Spawn a shell in a PTY and attach the calling terminal to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession()
	},
}

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Spawn a shell, resize it once, and report the result (non-interactive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResizeDemo()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ptyhost-demo v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&shellFlag, "shell", defaultShell(), "shell to spawn")
	rootCmd.PersistentFlags().Uint16Var(&colsFlag, "cols", 80, "initial terminal columns")
	rootCmd.PersistentFlags().Uint16Var(&rowsFlag, "rows", 24, "initial terminal rows")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
