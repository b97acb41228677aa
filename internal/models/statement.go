package models

import (
	"time"
)

// FlexQueryResponse wraps the root record of a parsed document with typed
// accessors for its required attributes.
type FlexQueryResponse struct {
	rec *Record
}

// NewFlexQueryResponse wraps a root record.
func NewFlexQueryResponse(rec *Record) *FlexQueryResponse {
	return &FlexQueryResponse{rec: rec}
}

// Record returns the underlying record.
func (r *FlexQueryResponse) Record() *Record {
	return r.rec
}

// QueryName returns the name of the Flex query that produced the report.
func (r *FlexQueryResponse) QueryName() string {
	return r.rec.Text("queryName")
}

// Type returns the report type, e.g. "AF" for an Activity Flex query.
func (r *FlexQueryResponse) Type() string {
	return r.rec.Text("type")
}

// Statements returns the account statements carried by the report.
func (r *FlexQueryResponse) Statements() []*FlexStatement {
	recs := r.rec.Children("FlexStatements")
	stmts := make([]*FlexStatement, len(recs))
	for i, rec := range recs {
		stmts[i] = &FlexStatement{rec: rec}
	}
	return stmts
}

// FlexStatement wraps one account statement record.
type FlexStatement struct {
	rec *Record
}

// NewFlexStatement wraps a statement record.
func NewFlexStatement(rec *Record) *FlexStatement {
	return &FlexStatement{rec: rec}
}

// Record returns the underlying record.
func (s *FlexStatement) Record() *Record {
	return s.rec
}

// AccountID returns the brokerage account the statement covers.
func (s *FlexStatement) AccountID() string {
	return s.rec.Text("accountId")
}

// FromDate returns the first day of the reporting period.
func (s *FlexStatement) FromDate() time.Time {
	v, _ := s.rec.Get("fromDate")
	return v.Date()
}

// ToDate returns the last day of the reporting period.
func (s *FlexStatement) ToDate() time.Time {
	v, _ := s.rec.Get("toDate")
	return v.Date()
}

// Period returns the period label from the query configuration.
func (s *FlexStatement) Period() string {
	return s.rec.Text("period")
}

// WhenGenerated returns the report generation timestamp.
func (s *FlexStatement) WhenGenerated() time.Time {
	v, _ := s.rec.Get("whenGenerated")
	return v.Date()
}

// Section returns the records of one report section by container tag.
func (s *FlexStatement) Section(container string) []*Record {
	return s.rec.Children(container)
}

// AccountInformation returns the account information element, nil when the
// section was not selected in the query.
func (s *FlexStatement) AccountInformation() *Record {
	return s.single("AccountInformation")
}

// ChangeInNAV returns the change-in-NAV element, nil when absent.
func (s *FlexStatement) ChangeInNAV() *Record {
	return s.single("ChangeInNAV")
}

func (s *FlexStatement) single(tag string) *Record {
	recs := s.rec.Children(tag)
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

// Trades returns the trade execution records.
func (s *FlexStatement) Trades() []*Record {
	return s.Section("Trades")
}

// CashTransactions returns the cash transaction records.
func (s *FlexStatement) CashTransactions() []*Record {
	return s.Section("CashTransactions")
}

// OpenPositions returns the open position records.
func (s *FlexStatement) OpenPositions() []*Record {
	return s.Section("OpenPositions")
}

// FxPositions returns the FX lot records.
func (s *FlexStatement) FxPositions() []*Record {
	return s.Section("FxPositions")
}

// CashReport returns the per-currency cash report records.
func (s *FlexStatement) CashReport() []*Record {
	return s.Section("CashReport")
}

// CorporateActions returns the corporate action records.
func (s *FlexStatement) CorporateActions() []*Record {
	return s.Section("CorporateActions")
}

// Transfers returns the position transfer records.
func (s *FlexStatement) Transfers() []*Record {
	return s.Section("Transfers")
}

// SecuritiesInfo returns the security master records.
func (s *FlexStatement) SecuritiesInfo() []*Record {
	return s.Section("SecuritiesInfo")
}

// ConversionRates returns the currency conversion rate records.
func (s *FlexStatement) ConversionRates() []*Record {
	return s.Section("ConversionRates")
}
