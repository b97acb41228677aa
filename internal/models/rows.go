package models

import (
	"github.com/shopspring/decimal"
)

// TradeRow is the flat CSV projection of a Trade record.
type TradeRow struct {
	AccountID       string          `csv:"AccountId"`
	TradeDate       string          `csv:"TradeDate"`
	SettleDate      string          `csv:"SettleDate"`
	Symbol          string          `csv:"Symbol"`
	Description     string          `csv:"Description"`
	AssetCategory   string          `csv:"AssetCategory"`
	Currency        string          `csv:"Currency"`
	BuySell         string          `csv:"BuySell"`
	Quantity        decimal.Decimal `csv:"Quantity"`
	TradePrice      decimal.Decimal `csv:"TradePrice"`
	TradeMoney      decimal.Decimal `csv:"TradeMoney"`
	Proceeds        decimal.Decimal `csv:"Proceeds"`
	Commission      decimal.Decimal `csv:"Commission"`
	Taxes           decimal.Decimal `csv:"Taxes"`
	NetCash         decimal.Decimal `csv:"NetCash"`
	RealizedPnl     decimal.Decimal `csv:"RealizedPnl"`
	MtmPnl          decimal.Decimal `csv:"MtmPnl"`
	Exchange        string          `csv:"Exchange"`
	OpenClose       string          `csv:"OpenClose"`
	TransactionID   string          `csv:"TransactionId"`
	OrderTime       string          `csv:"OrderTime"`
	Notes           string          `csv:"Notes"`
}

// NewTradeRow projects a Trade record into its CSV row.
func NewTradeRow(rec *Record) TradeRow {
	return TradeRow{
		AccountID:     rec.Text("accountId"),
		TradeDate:     rec.Display("tradeDate"),
		SettleDate:    rec.Display("settleDateTarget"),
		Symbol:        rec.Text("symbol"),
		Description:   rec.Text("description"),
		AssetCategory: rec.EnumName("assetCategory"),
		Currency:      rec.Text("currency"),
		BuySell:       rec.EnumName("buySell"),
		Quantity:      rec.Number("quantity"),
		TradePrice:    rec.Number("tradePrice"),
		TradeMoney:    rec.Number("tradeMoney"),
		Proceeds:      rec.Number("proceeds"),
		Commission:    rec.Number("ibCommission"),
		Taxes:         rec.Number("taxes"),
		NetCash:       rec.Number("netCash"),
		RealizedPnl:   rec.Number("fifoPnlRealized"),
		MtmPnl:        rec.Number("mtmPnl"),
		Exchange:      rec.Text("exchange"),
		OpenClose:     rec.EnumName("openCloseIndicator"),
		TransactionID: rec.Text("transactionID"),
		OrderTime:     rec.Display("orderTime"),
		Notes:         rec.Display("notes"),
	}
}

// CashTransactionRow is the flat CSV projection of a CashTransaction record.
type CashTransactionRow struct {
	AccountID     string          `csv:"AccountId"`
	DateTime      string          `csv:"DateTime"`
	SettleDate    string          `csv:"SettleDate"`
	Type          string          `csv:"Type"`
	Symbol        string          `csv:"Symbol"`
	Description   string          `csv:"Description"`
	Currency      string          `csv:"Currency"`
	Amount        decimal.Decimal `csv:"Amount"`
	FxRateToBase  decimal.Decimal `csv:"FxRateToBase"`
	TransactionID string          `csv:"TransactionId"`
	Code          string          `csv:"Code"`
}

// NewCashTransactionRow projects a CashTransaction record into its CSV row.
func NewCashTransactionRow(rec *Record) CashTransactionRow {
	return CashTransactionRow{
		AccountID:     rec.Text("accountId"),
		DateTime:      rec.Display("dateTime"),
		SettleDate:    rec.Display("settleDate"),
		Type:          rec.EnumName("type"),
		Symbol:        rec.Text("symbol"),
		Description:   rec.Text("description"),
		Currency:      rec.Text("currency"),
		Amount:        rec.Number("amount"),
		FxRateToBase:  rec.Number("fxRateToBase"),
		TransactionID: rec.Text("transactionID"),
		Code:          rec.Display("code"),
	}
}

// OpenPositionRow is the flat CSV projection of an OpenPosition record.
type OpenPositionRow struct {
	AccountID     string          `csv:"AccountId"`
	ReportDate    string          `csv:"ReportDate"`
	Symbol        string          `csv:"Symbol"`
	Description   string          `csv:"Description"`
	AssetCategory string          `csv:"AssetCategory"`
	Currency      string          `csv:"Currency"`
	Side          string          `csv:"Side"`
	Position      decimal.Decimal `csv:"Position"`
	MarkPrice     decimal.Decimal `csv:"MarkPrice"`
	PositionValue decimal.Decimal `csv:"PositionValue"`
	CostBasis     decimal.Decimal `csv:"CostBasis"`
	UnrealizedPnl decimal.Decimal `csv:"UnrealizedPnl"`
}

// NewOpenPositionRow projects an OpenPosition record into its CSV row.
func NewOpenPositionRow(rec *Record) OpenPositionRow {
	return OpenPositionRow{
		AccountID:     rec.Text("accountId"),
		ReportDate:    rec.Display("reportDate"),
		Symbol:        rec.Text("symbol"),
		Description:   rec.Text("description"),
		AssetCategory: rec.EnumName("assetCategory"),
		Currency:      rec.Text("currency"),
		Side:          rec.EnumName("side"),
		Position:      rec.Number("position"),
		MarkPrice:     rec.Number("markPrice"),
		PositionValue: rec.Number("positionValue"),
		CostBasis:     rec.Number("costBasisMoney"),
		UnrealizedPnl: rec.Number("fifoPnlUnrealized"),
	}
}
