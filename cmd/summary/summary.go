// Package summary handles the report summary command
package summary

import (
	"os"

	"fjacquet/flex-csv/cmd/root"
	"fjacquet/flex-csv/internal/flexparser"
	"fjacquet/flex-csv/internal/logging"
	"fjacquet/flex-csv/internal/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dayFirst bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a Flex report XML file as YAML",
	Long: `Parse a Flex query response XML file and write a YAML summary of each
statement: reporting period, per-section record counts and cash totals.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&dayFirst, "day-first", false, "Read slashed dates as day/month instead of month/day")
}

type statementSummary struct {
	AccountID     string         `yaml:"account_id"`
	FromDate      string         `yaml:"from_date"`
	ToDate        string         `yaml:"to_date"`
	WhenGenerated string         `yaml:"when_generated"`
	Sections      map[string]int `yaml:"sections,omitempty"`
	TradeCount    int            `yaml:"trade_count"`
	CashTotal     string         `yaml:"cash_total,omitempty"`
}

type reportSummary struct {
	QueryName  string             `yaml:"query_name"`
	Type       string             `yaml:"type"`
	Statements []statementSummary `yaml:"statements"`
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Flex report summary command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)

	p := flexparser.New(flexparser.WithDayFirst(dayFirst))
	resp, err := p.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	summary := reportSummary{
		QueryName: resp.QueryName(),
		Type:      resp.Type(),
		Statements: lo.Map(resp.Statements(), func(stmt *models.FlexStatement, _ int) statementSummary {
			return summarizeStatement(stmt)
		}),
	}

	out, err := yaml.Marshal(&summary)
	if err != nil {
		root.Log.Fatalf("Error rendering summary: %v", err)
	}

	if root.SharedFlags.Output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			root.Log.Fatalf("Error writing summary: %v", err)
		}
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, out, 0600); err != nil {
		root.Log.Fatalf("Error writing summary: %v", err)
	}
	root.Log.WithField(logging.FieldFile, root.SharedFlags.Output).Info("Summary written successfully!")
}

func summarizeStatement(stmt *models.FlexStatement) statementSummary {
	sections := make(map[string]int)
	for _, container := range stmt.Record().Containers() {
		sections[container] = len(stmt.Section(container))
	}

	s := statementSummary{
		AccountID:     stmt.AccountID(),
		FromDate:      stmt.FromDate().Format("2006-01-02"),
		ToDate:        stmt.ToDate().Format("2006-01-02"),
		WhenGenerated: stmt.WhenGenerated().Format("2006-01-02 15:04:05"),
		Sections:      sections,
		TradeCount:    len(stmt.Trades()),
	}

	cash := stmt.CashTransactions()
	if len(cash) > 0 {
		total := lo.Reduce(cash, func(acc decimal.Decimal, rec *models.Record, _ int) decimal.Decimal {
			return acc.Add(rec.Number("amount"))
		}, decimal.Zero)
		s.CashTotal = total.String()
	}
	return s
}
