// Package parse handles the strict parsing command
package parse

import (
	"fjacquet/flex-csv/cmd/root"
	"fjacquet/flex-csv/internal/flexparser"
	"fjacquet/flex-csv/internal/logging"

	"github.com/spf13/cobra"
)

var dayFirst bool

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a Flex report XML file",
	Long: `Parse a Flex query response XML file strictly against the report schema
and print a summary of the statements it contains. Any structural problem,
unknown element or malformed value fails the parse with a descriptive error.`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().BoolVar(&dayFirst, "day-first", false, "Read slashed dates as day/month instead of month/day")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Flex report parse command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)

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

	root.Log.WithField(logging.FieldQuery, resp.QueryName()).WithField("type", resp.Type()).
		Info("Parsed Flex query response")
	for _, stmt := range resp.Statements() {
		root.Log.WithField(logging.FieldAccount, stmt.AccountID()).
			WithField("from", stmt.FromDate().Format("2006-01-02")).
			WithField("to", stmt.ToDate().Format("2006-01-02")).
			Info("Statement")
		for _, container := range stmt.Record().Containers() {
			root.Log.Infof("  %s: %d records", container, len(stmt.Section(container)))
		}
	}
}
