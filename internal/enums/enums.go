// Package enums defines the enumerated value kinds appearing in Flex report
// attributes, and the resolver that maps raw textual codes back to canonical
// variants. The report generator has re-spelled several values across
// versions, so each kind carries an alias table mapping every accepted
// historical spelling to its canonical variant. Lookup is by value equality
// only, never by variant name or position.
package enums

import (
	"fmt"
	"strings"
)

// Kind identifies one enumeration kind.
type Kind string

const (
	KindCashAction        Kind = "CashAction"
	KindCode              Kind = "Code"
	KindAssetClass        Kind = "AssetClass"
	KindTradeType         Kind = "TradeType"
	KindBuySell           Kind = "BuySell"
	KindOpenClose         Kind = "OpenClose"
	KindOrderType         Kind = "OrderType"
	KindReorg             Kind = "Reorg"
	KindOptionAction      Kind = "OptionAction"
	KindLongShort         Kind = "LongShort"
	KindToFrom            Kind = "ToFrom"
	KindTransferType      Kind = "TransferType"
	KindInOut             Kind = "InOut"
	KindDeliveredReceived Kind = "DeliveredReceived"
	KindPutCall           Kind = "PutCall"
)

// Variant is one canonical member of an enumeration kind. Name is a stable
// identifier; Value is the canonical wire spelling.
type Variant struct {
	Kind  Kind
	Name  string
	Value string
}

func (v Variant) String() string {
	return string(v.Kind) + "." + v.Name
}

// Table holds the immutable spelling->variant maps for every kind. Build it
// once at startup and share it read-only across parses.
type Table struct {
	kinds map[Kind]map[string]Variant
}

type variantDef struct {
	name    string
	value   string
	aliases []string
}

// NewTable builds the resolver table for the full enumeration catalogue.
func NewTable() *Table {
	t := &Table{kinds: make(map[Kind]map[string]Variant, len(catalogue))}
	for kind, defs := range catalogue {
		byValue := make(map[string]Variant, len(defs))
		for _, def := range defs {
			v := Variant{Kind: kind, Name: def.name, Value: def.value}
			byValue[def.value] = v
			for _, alias := range def.aliases {
				byValue[alias] = v
			}
		}
		t.kinds[kind] = byValue
	}
	return t
}

// Default is the process-wide resolver table, never mutated after init.
var Default = NewTable()

// Known reports whether the table carries the given kind.
func (t *Table) Known(kind Kind) bool {
	_, ok := t.kinds[kind]
	return ok
}

// Resolve maps a raw spelling to its canonical variant, tolerating the known
// historical alternate spellings.
func (t *Table) Resolve(kind Kind, raw string) (Variant, error) {
	byValue, ok := t.kinds[kind]
	if !ok {
		return Variant{}, fmt.Errorf("unknown enumeration kind %q", kind)
	}
	// Orders executed in several parts may report a compound order type
	// such as "LMT;MKT"; those collapse to the catch-all MULTIPLE.
	if kind == KindOrderType && strings.Contains(raw, ";") {
		raw = "MULTIPLE"
	}
	v, ok := byValue[raw]
	if !ok {
		return Variant{}, fmt.Errorf("%q is not a recognized %s value", raw, kind)
	}
	return v, nil
}

var catalogue = map[Kind][]variantDef{
	KindCashAction: {
		// "Deposits/Withdrawals" is the pre-2020 spelling.
		{name: "DEPOSITWITHDRAW", value: "Deposits & Withdrawals", aliases: []string{"Deposits/Withdrawals"}},
		{name: "BROKERINTPAID", value: "Broker Interest Paid"},
		{name: "BROKERINTRCVD", value: "Broker Interest Received"},
		{name: "WHTAX", value: "Withholding Tax"},
		{name: "BONDINTRCVD", value: "Bond Interest Received"},
		{name: "BONDINTPAID", value: "Bond Interest Paid"},
		{name: "FEES", value: "Other Fees"},
		{name: "DIVIDEND", value: "Dividends"},
		{name: "PAYMENTINLIEU", value: "Payment In Lieu Of Dividends"},
		{name: "COMMADJ", value: "Commission Adjustments"},
	},
	KindCode: {
		{name: "ASSIGNMENT", value: "A"},
		{name: "AUTOEXERCISE", value: "AEx"},
		{name: "ADJUSTMENT", value: "Adj"},
		{name: "ALLOCATION", value: "Al"},
		{name: "AWAY", value: "Aw"},
		{name: "BUYIN", value: "B"},
		{name: "BORROW", value: "Bo"},
		{name: "CLOSING", value: "C"},
		{name: "CASHDELIVERY", value: "CD"},
		{name: "COMPLEX", value: "CP"},
		{name: "CANCEL", value: "Ca"},
		{name: "CORRECT", value: "Co"},
		{name: "CROSSING", value: "Cx"},
		{name: "DUAL", value: "D"},
		{name: "ETF", value: "ETF"},
		{name: "EXPIRED", value: "Ep"},
		{name: "EXERCISE", value: "Ex"},
		{name: "GUARANTEED", value: "G"},
		{name: "HIGHESTCOST", value: "HC"},
		{name: "HFINVESTMENT", value: "HFI"},
		{name: "HFREDEMPTION", value: "HFR"},
		{name: "INTERNAL", value: "I"},
		{name: "AFFILIATE", value: "IA"},
		{name: "INVESTOR", value: "INV"},
		{name: "MARGINLOW", value: "L"},
		{name: "WASHSALE", value: "LD"},
		{name: "LIFO", value: "LI"},
		{name: "LTCG", value: "LT"},
		{name: "LOAN", value: "Lo"},
		{name: "MANUAL", value: "M"},
		{name: "MANUALEXERCISE", value: "MEx"},
		{name: "MAXLOSS", value: "ML"},
		{name: "MAXLTCG", value: "MLG"},
		{name: "MINLTCG", value: "MLL"},
		{name: "MAXSTCG", value: "MSG"},
		{name: "MINSTCG", value: "MSL"},
		{name: "OPENING", value: "O"},
		{name: "PARTIAL", value: "P"},
		{name: "FRACRISKLESSPRINCIPAL", value: "RP"},
		{name: "FRACPRINCIPAL", value: "FP"},
		{name: "PRICEIMPROVEMENT", value: "PI"},
		{name: "POSTACCRUAL", value: "Po"},
		{name: "PRINCIPAL", value: "Pr"},
		{name: "REINVESTMENT", value: "R"},
		{name: "REDEMPTION", value: "RED"},
		{name: "REVERSE", value: "Re"},
		{name: "REIMBURSEMENT", value: "Ri"},
		{name: "SOLICITEDIB", value: "SI"},
		{name: "SPECIFICLOT", value: "SL"},
		{name: "SOLICITEDOTHER", value: "SO"},
		{name: "SHORTENEDSETTLEMENT", value: "SS"},
		{name: "STCG", value: "ST"},
		{name: "STOCKYIELD", value: "SY"},
		{name: "TRANSFER", value: "T"},
	},
	KindAssetClass: {
		{name: "CASH", value: "CASH"},
		{name: "BILL", value: "BILL"},
		{name: "BOND", value: "BOND"},
		{name: "STOCK", value: "STK"},
		{name: "OPTION", value: "OPT"},
		{name: "WARRANT", value: "WAR"},
		{name: "FUTURE", value: "FUT"},
		{name: "FUTUREOPTION", value: "FOP"},
		{name: "CFD", value: "CFD"},
		{name: "FOREXCFD", value: "FXCFD"},
		{name: "CRYPTOCURRENCY", value: "CRYPTO"},
		{name: "STRUCTUREDPRODUCTS", value: "IOPT"},
		{name: "METALS", value: "CMDTY"},
		{name: "OPTIONSONFUTURES", value: "FSFOP"},
		{name: "OPTIONSFUTURESSTYLE", value: "FSOPT"},
		{name: "MUTUALFUND", value: "FUND"},
	},
	KindTradeType: {
		{name: "EXCHTRADE", value: "ExchTrade"},
		{name: "TRADECANCEL", value: "TradeCancel"},
		{name: "FRACSHARE", value: "FracShare"},
		{name: "FRACSHARECANCEL", value: "FracShareCancel"},
		{name: "TRADECORRECT", value: "TradeCorrect"},
		{name: "BOOKTRADE", value: "BookTrade"},
		{name: "DVPTRADE", value: "DvpTrade"},
	},
	KindBuySell: {
		{name: "BUY", value: "BUY"},
		{name: "CANCELBUY", value: "BUY (Ca.)"},
		{name: "SELL", value: "SELL"},
		{name: "CANCELSELL", value: "SELL (Ca.)"},
	},
	KindOpenClose: {
		{name: "OPEN", value: "O"},
		{name: "CLOSE", value: "C"},
		{name: "OPENCLOSE", value: "C;O"},
		{name: "UNKNOWN", value: "-"},
	},
	KindOrderType: {
		{name: "LIMIT", value: "LMT"},
		{name: "MARKET", value: "MKT"},
		{name: "STOP", value: "STP"},
		{name: "STOPLIMIT", value: "STPLMT"},
		{name: "MARKETONCLOSE", value: "MOC"},
		{name: "LIMITONCLOSE", value: "LOC"},
		// Catch-all for compound order types; not sent by the report
		// generator itself.
		{name: "MULTIPLE", value: "MULTIPLE"},
	},
	KindReorg: {
		{name: "BONDCONVERSION", value: "BC"},
		{name: "BONDMATURITY", value: "BM"},
		{name: "CONTRACTSOULTE", value: "CA"},
		{name: "CONTRACTCONSOLIDATION", value: "CC"},
		{name: "CASHDIV", value: "CD"},
		{name: "CHOICEDIV", value: "CH"},
		{name: "CONVERTIBLEISSUE", value: "CI"},
		{name: "CONTRACTSPINOFF", value: "CO"},
		{name: "COUPONPAYMENT", value: "CP"},
		{name: "CONTRACTSPLIT", value: "CS"},
		{name: "CFDTERMINATION", value: "CT"},
		{name: "DIVRIGHTSISSUE", value: "DI"},
		{name: "DELISTWORTHLESS", value: "DW"},
		{name: "EXPIREDIVRIGHT", value: "ED"},
		{name: "FEEALLOCATION", value: "FA"},
		{name: "FORWARDSPLITISSUE", value: "FI"},
		{name: "FORWARDSPLIT", value: "FS"},
		{name: "GENERICVOLUNTARY", value: "GV"},
		{name: "CHOICEDIVDELIVERY", value: "HD"},
		{name: "CHOICEDIVISSUE", value: "HI"},
		{name: "ISSUECHANGE", value: "IC"},
		{name: "ASSETPURCHASE", value: "OR"},
		{name: "PURCHASEISSUE", value: "PI"},
		{name: "PROXYVOTE", value: "PV"},
		{name: "RIGHTSISSUE", value: "RI"},
		{name: "REVERSESPLIT", value: "RS"},
		{name: "STOCKDIV", value: "SD"},
		{name: "SPINOFF", value: "SO"},
		{name: "SUBSCRIBERIGHTS", value: "SR"},
		{name: "MERGER", value: "TC"},
		{name: "TENDERISSUE", value: "TI"},
		{name: "TENDER", value: "TO"},
	},
	KindOptionAction: {
		{name: "ASSIGN", value: "Assignment"},
		{name: "EXERCISE", value: "Exercise"},
		{name: "EXPIRE", value: "Expiration"},
		{name: "SELL", value: "Sell"},
		{name: "BUY", value: "Buy"},
		{name: "CASHSETTLEMENT", value: "Cash Settlement"},
	},
	KindLongShort: {
		{name: "LONG", value: "Long"},
		{name: "SHORT", value: "Short"},
	},
	KindToFrom: {
		{name: "TO", value: "To"},
		{name: "FROM", value: "From"},
	},
	KindTransferType: {
		{name: "INTERNAL", value: "INTERNAL"},
		// "ACAT" appears in reports generated before the rename.
		{name: "ACATS", value: "ACATS", aliases: []string{"ACAT"}},
		{name: "ATON", value: "ATON"},
	},
	KindInOut: {
		{name: "IN", value: "IN"},
		{name: "OUT", value: "OUT"},
	},
	KindDeliveredReceived: {
		{name: "DELIVERED", value: "Delivered"},
		{name: "RECEIVED", value: "Received"},
	},
	KindPutCall: {
		{name: "PUT", value: "P"},
		{name: "CALL", value: "C"},
	},
}
