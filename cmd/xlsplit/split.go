package main

import (
	"fmt"
	"os"

	"github.com/javajack/xlsplit"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var splitCmd = &cobra.Command{
	Use:   "split <file.xlsx>",
	Short: "Split the table in a range at an anchor cell",
	Long: `Splits the table held in --range next to the cell at --at.
Horizontal splits stack the two tables; vertical splits place them side by side.`,
	Example: `  xlsplit split --range A1:D6 --at B3 report.xlsx
  xlsplit split --range A1:D6 --at B3 --axis vertical --side before -o out.xlsx report.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("range", "", "Range holding the table, e.g. A1:D6 (required)")
	splitCmd.Flags().String("at", "", "Anchor cell inside the range, e.g. B3 (required)")
	splitCmd.Flags().String("axis", "", "horizontal or vertical (default: horizontal)")
	splitCmd.Flags().String("side", "", "before or after the anchor cell (default: after)")
	splitCmd.Flags().Int("gap", 1, "Blank rows or columns between the resulting tables")
	splitCmd.Flags().String("config", "", "YAML file with sheet, axis, side and gap settings")
	splitCmd.Flags().StringP("output", "o", "", "Output file (default: overwrite input)")
	_ = splitCmd.MarkFlagRequired("range")
	_ = splitCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := &xlsplit.Config{}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		fh, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		defer fh.Close()
		if cfg, err = xlsplit.LoadConfig(fh); err != nil {
			return err
		}
	}
	// Flags given on the command line win over the config file.
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet, _ = cmd.Flags().GetString("sheet")
	}
	if cmd.Flags().Changed("axis") {
		cfg.Axis, _ = cmd.Flags().GetString("axis")
	}
	if cmd.Flags().Changed("side") {
		cfg.Side, _ = cmd.Flags().GetString("side")
	}
	if cmd.Flags().Changed("gap") || cfg.Gap == nil {
		gap, _ := cmd.Flags().GetInt("gap")
		cfg.Gap = &gap
	}
	axis, err := cfg.SplitAxis()
	if err != nil {
		return err
	}
	side, err := cfg.SplitSide()
	if err != nil {
		return err
	}

	area, anchor, err := parseRangeFlags(cmd, cfg.Sheet)
	if err != nil {
		return err
	}

	f, err := excelize.OpenFile(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer f.Close()

	opts := append(cfg.Options(), xlsplit.WithLogger(newLogger(cmd)))
	written, err := xlsplit.SplitRange(f, area, anchor, axis, side, opts...)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = args[0]
	}
	if err := f.SaveAs(out); err != nil {
		return fmt.Errorf("save %q: %w", out, err)
	}
	for _, a := range written {
		fmt.Fprintln(cmd.OutOrStdout(), a)
	}
	return nil
}

// parseRangeFlags reads --range and --at, applying sheet to both.
func parseRangeFlags(cmd *cobra.Command, sheet string) (xlsplit.AreaRef, xlsplit.CellRef, error) {
	rangeFlag, _ := cmd.Flags().GetString("range")
	area, err := xlsplit.ParseAreaRef(rangeFlag)
	if err != nil {
		return xlsplit.AreaRef{}, xlsplit.CellRef{}, err
	}
	if sheet != "" && area.First.Sheet == "" {
		area.First.Sheet, area.Last.Sheet = sheet, sheet
	}
	var anchor xlsplit.CellRef
	if cmd.Flags().Lookup("at") != nil {
		atFlag, _ := cmd.Flags().GetString("at")
		if anchor, err = xlsplit.ParseCellRef(atFlag); err != nil {
			return xlsplit.AreaRef{}, xlsplit.CellRef{}, err
		}
	}
	return area, anchor, nil
}
