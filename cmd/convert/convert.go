// Package convert handles the XML to CSV conversion command
package convert

import (
	"fmt"

	"fjacquet/flex-csv/cmd/root"
	"fjacquet/flex-csv/internal/common"
	"fjacquet/flex-csv/internal/flexparser"
	"fjacquet/flex-csv/internal/models"
	"fjacquet/flex-csv/internal/validation"

	"github.com/spf13/cobra"
)

var (
	section  string
	dayFirst bool
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Flex report XML file to CSV",
	Long: `Convert one section of a Flex query response XML file to CSV format.
The section flag selects which report section is written: trades, cash or
positions. Records from all statements in the report are combined.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&section, "section", "s", "trades", "Report section to convert (trades, cash, positions)")
	Cmd.Flags().BoolVar(&dayFirst, "day-first", false, "Read slashed dates as day/month instead of month/day")
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Flex report convert command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	if err := validation.IsValidSection(section); err != nil {
		root.Log.Fatalf("Invalid section: %v", err)
	}

	if root.SharedFlags.Validate {
		valid, err := flexparser.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			root.Log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			root.Log.Fatal("The file is not a Flex query response")
		}
		root.Log.Info("Validation successful.")
	}

	p := flexparser.New(flexparser.WithDayFirst(dayFirst))
	resp, err := p.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	if err := writeSection(resp, section, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error converting to CSV: %v", err)
	}
	root.Log.Info("Conversion completed successfully!")
}

func writeSection(resp *models.FlexQueryResponse, section, csvFile string) error {
	switch section {
	case "trades":
		var rows []models.TradeRow
		for _, stmt := range resp.Statements() {
			for _, rec := range stmt.Trades() {
				rows = append(rows, models.NewTradeRow(rec))
			}
		}
		return common.WriteRowsToCSV(rows, csvFile)
	case "cash":
		var rows []models.CashTransactionRow
		for _, stmt := range resp.Statements() {
			for _, rec := range stmt.CashTransactions() {
				rows = append(rows, models.NewCashTransactionRow(rec))
			}
		}
		return common.WriteRowsToCSV(rows, csvFile)
	case "positions":
		var rows []models.OpenPositionRow
		for _, stmt := range resp.Statements() {
			for _, rec := range stmt.OpenPositions() {
				rows = append(rows, models.NewOpenPositionRow(rec))
			}
		}
		return common.WriteRowsToCSV(rows, csvFile)
	default:
		return fmt.Errorf("unknown section %q, expected trades, cash or positions", section)
	}
}
