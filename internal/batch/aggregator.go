// Package batch provides aggregation of Flex statements across report files
package batch

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/flex-csv/internal/logging"
	"fjacquet/flex-csv/internal/models"
)

// DateRange represents a reporting period with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// AccountGroup represents the statements that belong to the same account
type AccountGroup struct {
	AccountID  string
	Statements []*models.FlexStatement
	DateRange  DateRange
}

// Aggregator consolidates statements from multiple report files by account
type Aggregator struct {
	log logging.Logger
}

// NewAggregator creates an aggregator with the given logger
func NewAggregator(log logging.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// GroupStatements groups statements by account ID, ordered by account,
// merging the reporting periods of each account's statements.
func (a *Aggregator) GroupStatements(stmts []*models.FlexStatement) []AccountGroup {
	byAccount := make(map[string]*AccountGroup)
	for _, stmt := range stmts {
		account := stmt.AccountID()
		group, ok := byAccount[account]
		if !ok {
			group = &AccountGroup{AccountID: account}
			byAccount[account] = group
		}
		group.Statements = append(group.Statements, stmt)
		group.DateRange = group.DateRange.Merge(DateRange{Start: stmt.FromDate(), End: stmt.ToDate()})
	}

	accounts := make([]string, 0, len(byAccount))
	for account := range byAccount {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	groups := make([]AccountGroup, 0, len(accounts))
	for _, account := range accounts {
		a.log.Info("Grouped statements for account",
			logging.Field{Key: logging.FieldAccount, Value: account},
			logging.Field{Key: logging.FieldStatements, Value: len(byAccount[account].Statements)})
		groups = append(groups, *byAccount[account])
	}
	return groups
}

// TradeRows returns the consolidated trade rows of an account group.
func (a *Aggregator) TradeRows(group AccountGroup) []models.TradeRow {
	var rows []models.TradeRow
	for _, stmt := range group.Statements {
		for _, rec := range stmt.Trades() {
			rows = append(rows, models.NewTradeRow(rec))
		}
	}
	return rows
}

// OutputFilename builds the consolidated CSV filename for an account,
// e.g. "U1234567_2024-01-01_2024-03-31.csv".
func (a *Aggregator) OutputFilename(accountID string, dr DateRange) string {
	if r := dr.String(); r != "" {
		return fmt.Sprintf("%s_%s.csv", accountID, r)
	}
	return fmt.Sprintf("%s.csv", accountID)
}
