package main

import (
	"fmt"

	"github.com/javajack/xlsplit"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var describeCmd = &cobra.Command{
	Use:   "describe <file.xlsx>",
	Short: "Print the table held in a range and any structural problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		area, _, err := parseRangeFlags(cmd, sheet)
		if err != nil {
			return err
		}
		f, err := excelize.OpenFile(args[0])
		if err != nil {
			return fmt.Errorf("open %q: %w", args[0], err)
		}
		defer f.Close()

		table, err := xlsplit.ReadTable(f, area)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), xlsplit.Describe(table))
		for _, issue := range xlsplit.ValidateTable(table) {
			fmt.Fprintln(cmd.OutOrStdout(), issue)
		}
		return nil
	},
}

func init() {
	describeCmd.Flags().String("range", "", "Range holding the table, e.g. A1:D6 (required)")
	_ = describeCmd.MarkFlagRequired("range")
	rootCmd.AddCommand(describeCmd)
}
