package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xlsplit",
	Short: "xlsplit splits tables held in xlsx worksheets",
	Long: `xlsplit reads a rectangular worksheet range as a table, honouring merged cells,
and splits it into two tables at a row or column boundary next to an anchor cell.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log command dispatch to stderr")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet name (default: first sheet)")
}

// newLogger returns a debug logger on stderr when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
