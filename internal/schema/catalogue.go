package schema

import (
	"fjacquet/flex-csv/internal/enums"
)

// The shape catalogue below mirrors the Activity Flex Query layout: two
// aggregate shapes (FlexQueryResponse, FlexStatement) and the flat data
// element shapes their containers carry. Shapes share common field groups
// and override individual declarations where a report section deviates.

func fieldsOf(kind Kind, names ...string) []Field {
	fs := make([]Field, len(names))
	for i, name := range names {
		fs[i] = Field{Name: name, Kind: kind}
	}
	return fs
}

func enumField(name string, e enums.Kind) Field {
	return Field{Name: name, Kind: Enumerated, Enum: e}
}

func newShape(tag string, groups ...[]Field) *Shape {
	return &Shape{Tag: tag, Fields: NewFieldTable(groups...)}
}

// codeList is the near-universal "code" attribute, a comma-separated list
// of Code flags.
var codeList = []Field{{Name: "code", Kind: EnumSequence, Enum: enums.KindCode}}

var accountFields = fieldsOf(Text, "accountId", "acctAlias", "model")

var currencyFields = []Field{
	{Name: "currency", Kind: Text},
	{Name: "fxRateToBase", Kind: Decimal},
}

// securityFields is the security identification block shared by every
// per-instrument report section.
var securityFields = joinFields(
	[]Field{enumField("assetCategory", enums.KindAssetClass)},
	fieldsOf(Text,
		"symbol", "description", "conid", "securityID", "securityIDType",
		"cusip", "isin", "sedol", "listingExchange",
		"underlyingConid", "underlyingSymbol", "underlyingSecurityID",
		"underlyingListingExchange", "issuer",
	),
	fieldsOf(Decimal, "multiplier", "strike"),
	fieldsOf(Date, "expiry"),
	[]Field{enumField("putCall", enums.KindPutCall)},
	fieldsOf(Decimal, "principalAdjustFactor"),
)

// tradeFields is the execution block shared by Trade, Lot, Order,
// SymbolSummary, TradeConfirm and TradeTransfer.
var tradeFields = joinFields(
	accountFields,
	currencyFields,
	securityFields,
	[]Field{
		enumField("transactionType", enums.KindTradeType),
		enumField("openCloseIndicator", enums.KindOpenClose),
		enumField("buySell", enums.KindBuySell),
		enumField("orderType", enums.KindOrderType),
	},
	fieldsOf(Text,
		"tradeID", "exchange", "ibCommissionCurrency", "levelOfDetail",
		"ibOrderID", "clearingFirmID", "transactionID", "ibExecID",
		"brokerageOrderID", "orderReference", "volatilityOrderLink",
		"exchOrderId", "extExecID", "traderID", "origTradeID", "origOrderID",
	),
	fieldsOf(Date, "reportDate", "tradeDate", "settleDateTarget", "origTradeDate"),
	fieldsOf(Time, "tradeTime"),
	fieldsOf(Decimal,
		"quantity", "tradePrice", "tradeMoney", "taxes", "ibCommission",
		"netCash", "netCashInBase", "closePrice", "cost", "mtmPnl",
		"origTradePrice", "fifoPnlRealized", "capitalGainsPnl",
		"changeInPrice", "changeInQuantity", "proceeds", "fxPnl", "accruedInt",
	),
	fieldsOf(DateTime,
		"openDateTime", "orderTime", "dateTime", "holdingPeriodDateTime",
		"whenRealized", "whenReopened",
	),
	[]Field{
		{Name: "notes", Kind: EnumSequence, Enum: enums.KindCode, Separator: ";"},
		{Name: "isAPIOrder", Kind: Boolean},
	},
)

// orderFields extends tradeFields with the order-level commission
// breakdown carried by Order, SymbolSummary and TradeConfirm.
var orderFields = joinFields(
	tradeFields,
	fieldsOf(Decimal,
		"orderID", "amount", "commission", "price", "tax",
		"brokerExecutionCommission", "brokerClearingCommission",
		"thirdPartyExecutionCommission", "thirdPartyClearingCommission",
		"thirdPartyRegulatoryCommission", "otherCommission",
	),
	fieldsOf(Text, "commissionCurrency", "allocatedTo"),
	fieldsOf(Date, "settleDate"),
	codeList,
)

// dividendAccrualFields is shared by ChangeInDividendAccrual and
// OpenDividendAccrual.
var dividendAccrualFields = joinFields(
	accountFields,
	currencyFields,
	securityFields,
	fieldsOf(Date, "date", "reportDate", "exDate", "payDate"),
	fieldsOf(Decimal, "quantity", "tax", "fee", "grossRate", "grossAmount", "netAmount"),
	codeList,
	fieldsOf(Text, "fromAcct", "toAcct"),
)

func joinFields(groups ...[]Field) []Field {
	var out []Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func catalogue() []*Shape {
	return []*Shape{
		flexQueryResponseShape(),
		flexStatementShape(),
		accountInformationShape(),
		changeInNAVShape(),
		mtmPerformanceSummaryShape(),
		equitySummaryShape(),
		mtdYTDPerformanceSummaryShape(),
		cashReportCurrencyShape(),
		statementOfFundsLineShape(),
		changeInPositionValueShape(),
		openPositionShape(),
		fxLotShape(),
		newShape("Trade", tradeFields, fieldsOf(Text, "serialNumber", "deliveryType", "commodityType", "weight"), fieldsOf(Decimal, "fineness")),
		newShape("Lot", tradeFields),
		newShape("Order", orderFields),
		newShape("SymbolSummary", orderFields),
		newShape("TradeConfirm", orderFields),
		optionEAEShape(),
		tradeTransferShape(),
		unbundledCommissionDetailShape(),
		interestAccrualsCurrencyShape(),
		tierInterestDetailShape(),
		hardToBorrowDetailShape(),
		slbActivityShape(),
		slbFeeShape(),
		transferShape(),
		unsettledTransferShape(),
		priorPeriodPositionShape(),
		corporateActionShape(),
		cashTransactionShape(),
		debitCardActivityShape(),
		newShape("ChangeInDividendAccrual", dividendAccrualFields),
		newShape("OpenDividendAccrual", dividendAccrualFields),
		securityInfoShape(),
		conversionRateShape(),
		fifoPerformanceSummaryShape(),
		netStockPositionShape(),
		clientFeeShape(),
		clientFeesDetailShape(),
		salesTaxShape(),
	}
}

func flexQueryResponseShape() *Shape {
	return &Shape{
		Tag: "FlexQueryResponse",
		Fields: NewFieldTable([]Field{
			{Name: "queryName", Kind: Text, Required: true},
			{Name: "type", Kind: Text, Required: true},
		}),
		Children: map[string]string{
			"FlexStatements": "FlexStatement",
		},
	}
}

func flexStatementShape() *Shape {
	return &Shape{
		Tag: "FlexStatement",
		Fields: NewFieldTable([]Field{
			{Name: "accountId", Kind: Text, Required: true},
			{Name: "fromDate", Kind: Date, Required: true},
			{Name: "toDate", Kind: Date, Required: true},
			{Name: "period", Kind: Text, Required: true},
			{Name: "whenGenerated", Kind: DateTime, Required: true},
		}),
		// Container tag -> item shape tag. An empty item tag marks a child
		// that is itself a data element rather than a container.
		Children: map[string]string{
			"AccountInformation":          "",
			"ChangeInNAV":                 "",
			"CashReport":                  "CashReportCurrency",
			"MTDYTDPerformanceSummary":    "MTDYTDPerformanceSummaryUnderlying",
			"MTMPerformanceSummaryInBase": "MTMPerformanceSummaryUnderlying",
			"EquitySummaryInBase":         "EquitySummaryByReportDateInBase",
			"FIFOPerformanceSummaryInBase": "FIFOPerformanceSummaryUnderlying",
			"StmtFunds":                   "StatementOfFundsLine",
			"ChangeInPositionValues":      "ChangeInPositionValue",
			"OpenPositions":               "OpenPosition",
			"NetStockPositionSummary":     "NetStockPosition",
			"FxPositions":                 "FxLot",
			"Trades":                      "Trade",
			"TradeConfirms":               "TradeConfirm",
			"OptionEAE":                   "OptionEAE",
			"TradeTransfers":              "TradeTransfer",
			"UnsettledTransfers":          "UnsettledTransfer",
			"UnbundledCommissionDetails":  "UnbundledCommissionDetail",
			"PriorPeriodPositions":        "PriorPeriodPosition",
			"CorporateActions":            "CorporateAction",
			"ClientFees":                  "ClientFee",
			"ClientFeesDetail":            "ClientFeesDetail",
			"DebitCardActivities":         "DebitCardActivity",
			"CashTransactions":            "CashTransaction",
			"SalesTaxes":                  "SalesTax",
			"InterestAccruals":            "InterestAccrualsCurrency",
			"TierInterestDetails":         "TierInterestDetail",
			"HardToBorrowDetails":         "HardToBorrowDetail",
			"SLBActivities":               "SLBActivity",
			"SLBFees":                     "SLBFee",
			"Transfers":                   "Transfer",
			"ChangeInDividendAccruals":    "ChangeInDividendAccrual",
			"OpenDividendAccruals":        "OpenDividendAccrual",
			"SecuritiesInfo":              "SecurityInfo",
			"ConversionRates":             "ConversionRate",
			// Sections the report generator can emit but whose line items
			// are not modelled. They decode when empty; populated ones fail
			// the item shape lookup.
			"FdicInsuredDepositsByBank":   "FdicInsuredDeposit",
			"ComplexPositions":            "ComplexPosition",
			"HKIPOSubscriptionActivity":   "HKIPOSubscription",
			"HKIPOOpenSubscriptions":      "HKIPOOpenSubscription",
			"TransactionTaxes":            "TransactionTax",
			// The report generator really spells it "Excercises".
			"PendingExcercises":           "PendingExcercise",
			"FxTransactions":              "FxTransaction",
			"UnbookedTrades":              "UnbookedTrade",
			"RoutingCommissions":          "RoutingCommission",
			"IBGNoteTransactions":         "IBGNoteTransaction",
			"Adjustments":                 "Adjustment",
			"SoftDollars":                 "SoftDollar",
			"CFDCharges":                  "CFDCharge",
			"HardToBorrowMarkupDetails":   "HardToBorrowMarkupDetail",
			"SLBOpenContracts":            "SLBOpenContract",
			"CommissionCredits":           "CommissionCredit",
			"StockGrantActivities":        "StockGrantActivity",
		},
	}
}

func accountInformationShape() *Shape {
	return newShape("AccountInformation",
		accountFields,
		fieldsOf(Text, "currency", "name", "accountType", "customerType"),
		[]Field{
			{Name: "accountCapabilities", Kind: TextSequence},
			{Name: "tradingPermissions", Kind: TextSequence},
		},
		fieldsOf(Text, "registeredRepName", "registeredRepPhone"),
		fieldsOf(Date, "dateOpened", "dateFunded", "dateClosed"),
		fieldsOf(Text,
			"street", "street2", "city", "state", "country", "postalCode",
			"streetResidentialAddress", "street2ResidentialAddress",
			"cityResidentialAddress", "stateResidentialAddress",
			"countryResidentialAddress", "postalCodeResidentialAddress",
			"masterName", "ibEntity", "primaryEmail",
			"accountRepName", "accountRepPhone",
		),
	)
}

func changeInNAVShape() *Shape {
	return newShape("ChangeInNAV",
		accountFields,
		fieldsOf(Date, "fromDate", "toDate"),
		fieldsOf(Decimal,
			"startingValue", "mtm", "realized", "changeInUnrealized",
			"costAdjustments", "transferredPnlAdjustments",
			"depositsWithdrawals", "internalCashTransfers", "assetTransfers",
			"debitCardActivity", "billPay", "dividends", "withholdingTax",
			"withholding871m", "withholdingTaxCollected",
			"changeInDividendAccruals", "interest",
			"changeInInterestAccruals", "advisorFees", "clientFees",
			"otherFees", "feesReceivables", "commissions",
			"commissionReceivables", "forexCommissions", "transactionTax",
			"taxReceivables", "salesTax", "softDollars", "netFxTrading",
			"fxTranslation", "linkingAdjustments", "other", "endingValue",
			"twr", "corporateActionProceeds", "commissionCreditsRedemption",
			"grantActivity", "excessFundSweep", "billableSalesTax",
		),
	)
}

func mtmPerformanceSummaryShape() *Shape {
	return newShape("MTMPerformanceSummaryUnderlying",
		accountFields,
		securityFields,
		fieldsOf(Date, "reportDate"),
		fieldsOf(Decimal,
			"prevCloseQuantity", "prevClosePrice", "closeQuantity",
			"closePrice", "transactionMtm", "priorOpenMtm", "commissions",
			"other", "total", "corpActionMtm", "dividends",
		),
		codeList,
	)
}

func equitySummaryShape() *Shape {
	return newShape("EquitySummaryByReportDateInBase",
		accountFields,
		fieldsOf(Date, "reportDate"),
		fieldsOf(Decimal,
			"cash", "cashLong", "cashShort",
			"slbCashCollateral", "slbCashCollateralLong", "slbCashCollateralShort",
			"stock", "stockLong", "stockShort",
			"slbDirectSecuritiesBorrowed", "slbDirectSecuritiesBorrowedLong",
			"slbDirectSecuritiesBorrowedShort",
			"slbDirectSecuritiesLent", "slbDirectSecuritiesLentLong",
			"slbDirectSecuritiesLentShort",
			"options", "optionsLong", "optionsShort",
			"bonds", "bondsLong", "bondsShort",
			"notes", "notesLong", "notesShort",
			"interestAccruals", "interestAccrualsLong", "interestAccrualsShort",
			"softDollars", "softDollarsLong", "softDollarsShort",
			"dividendAccruals", "dividendAccrualsLong", "dividendAccrualsShort",
			"total", "totalLong", "totalShort",
			"commodities", "commoditiesLong", "commoditiesShort",
			"funds", "fundsLong", "fundsShort",
			"forexCfdUnrealizedPl", "forexCfdUnrealizedPlLong",
			"forexCfdUnrealizedPlShort",
			"brokerInterestAccrualsComponent", "brokerInterestAccrualsComponentLong",
			"brokerInterestAccrualsComponentShort",
			"brokerCashComponent", "brokerCashComponentLong", "brokerCashComponentShort",
			"cfdUnrealizedPl", "cfdUnrealizedPlLong", "cfdUnrealizedPlShort",
			"fdicInsuredBankSweepAccount", "fdicInsuredBankSweepAccountLong",
			"fdicInsuredBankSweepAccountShort",
			"fdicInsuredBankSweepAccountCashComponent",
			"fdicInsuredBankSweepAccountCashComponentLong",
			"fdicInsuredBankSweepAccountCashComponentShort",
			"fdicInsuredAccountInterestAccruals",
			"fdicInsuredAccountInterestAccrualsLong",
			"fdicInsuredAccountInterestAccrualsShort",
			"fdicInsuredAccountInterestAccrualsComponent",
			"fdicInsuredAccountInterestAccrualsComponentLong",
			"fdicInsuredAccountInterestAccrualsComponentShort",
			"ipoSubscription", "ipoSubscriptionLong", "ipoSubscriptionShort",
		),
	)
}

func mtdYTDPerformanceSummaryShape() *Shape {
	return newShape("MTDYTDPerformanceSummaryUnderlying",
		accountFields,
		securityFields,
		fieldsOf(Decimal,
			"mtmMTD", "mtmYTD", "realSTMTD", "realSTYTD", "realLTMTD",
			"realLTYTD", "realizedPnlMTD", "realizedCapitalGainsPnlMTD",
			"realizedFxPnlMTD", "realizedPnlYTD",
			"realizedCapitalGainsPnlYTD", "realizedFxPnlYTD",
		),
	)
}

func cashReportCurrencyShape() *Shape {
	return newShape("CashReportCurrency",
		accountFields,
		currencyFields,
		fieldsOf(Date, "fromDate", "toDate"),
		fieldsOf(Text, "levelOfDetail"),
		fieldsOf(Decimal,
			"startingCash", "startingCashSec", "startingCashCom",
			"clientFees", "clientFeesSec", "clientFeesCom",
			"commissions", "commissionsSec", "commissionsCom",
			"billableCommissions", "billableCommissionsSec", "billableCommissionsCom",
			"depositWithdrawals", "depositWithdrawalsSec", "depositWithdrawalsCom",
			"deposits", "depositsSec", "depositsCom",
			"withdrawals", "withdrawalsSec", "withdrawalsCom",
			"accountTransfers", "accountTransfersSec", "accountTransfersCom",
			"internalTransfers", "internalTransfersSec", "internalTransfersCom",
			"dividends", "dividendsSec", "dividendsCom",
			"brokerInterest", "brokerInterestSec", "brokerInterestCom",
			"bondInterest", "bondInterestSec", "bondInterestCom",
			"cashSettlingMtm", "cashSettlingMtmSec", "cashSettlingMtmCom",
			"cfdCharges", "cfdChargesSec", "cfdChargesCom",
			"netTradesSales", "netTradesSalesSec", "netTradesSalesCom",
			"netTradesPurchases", "netTradesPurchasesSec", "netTradesPurchasesCom",
			"feesReceivables", "feesReceivablesSec", "feesReceivablesCom",
			"paymentInLieu", "paymentInLieuSec", "paymentInLieuCom",
			"transactionTax", "transactionTaxSec", "transactionTaxCom",
			"withholdingTax", "withholdingTaxSec", "withholdingTaxCom",
			"fxTranslationGainLoss", "fxTranslationGainLossSec", "fxTranslationGainLossCom",
			"otherFees", "otherFeesSec", "otherFeesCom",
			"endingCash", "endingCashSec", "endingCashCom",
			"endingSettledCash", "endingSettledCashSec", "endingSettledCashCom",
			"clientFeesMTD", "clientFeesYTD",
			"commissionsMTD", "commissionsYTD",
			"billableCommissionsMTD", "billableCommissionsYTD",
			"depositWithdrawalsMTD", "depositWithdrawalsYTD",
			"depositsMTD", "depositsYTD",
			"withdrawalsMTD", "withdrawalsYTD",
			"accountTransfersMTD", "accountTransfersYTD",
			"internalTransfersMTD", "internalTransfersYTD",
			"excessFundSweep", "excessFundSweepSec", "excessFundSweepCom",
			"excessFundSweepMTD", "excessFundSweepYTD",
			"dividendsMTD", "dividendsYTD",
			"insuredDepositInterestMTD", "insuredDepositInterestYTD",
			"brokerInterestMTD", "brokerInterestYTD",
			"bondInterestMTD", "bondInterestYTD",
			"cashSettlingMtmMTD", "cashSettlingMtmYTD",
			"realizedVmMTD", "realizedVmYTD",
			"cfdChargesMTD", "cfdChargesYTD",
			"netTradesSalesMTD", "netTradesSalesYTD",
			"advisorFeesMTD", "advisorFeesYTD",
			"feesReceivablesMTD", "feesReceivablesYTD",
			"netTradesPurchasesMTD", "netTradesPurchasesYTD",
			"paymentInLieuMTD", "paymentInLieuYTD",
			"transactionTaxMTD", "transactionTaxYTD",
			"taxReceivablesMTD", "taxReceivablesYTD",
			"withholdingTaxMTD", "withholdingTaxYTD",
			"withholding871mMTD", "withholding871mYTD",
			"withholdingCollectedTaxMTD", "withholdingCollectedTaxYTD",
			"salesTaxMTD", "salesTaxYTD",
			"otherFeesMTD", "otherFeesYTD",
			"avgCreditBalance", "avgCreditBalanceSec", "avgCreditBalanceCom",
			"avgDebitBalance", "avgDebitBalanceSec", "avgDebitBalanceCom",
			"linkingAdjustments", "linkingAdjustmentsSec", "linkingAdjustmentsCom",
			"insuredDepositInterest", "insuredDepositInterestSec", "insuredDepositInterestCom",
			"realizedVm", "realizedVmSec", "realizedVmCom",
			"advisorFees", "advisorFeesSec", "advisorFeesCom",
			"taxReceivables", "taxReceivablesSec", "taxReceivablesCom",
			"withholding871m", "withholding871mSec", "withholding871mCom",
			"withholdingCollectedTax", "withholdingCollectedTaxSec", "withholdingCollectedTaxCom",
			"salesTax", "salesTaxSec", "salesTaxCom",
			"other", "otherSec", "otherCom",
			"debitCardActivity", "debitCardActivitySec", "debitCardActivityCom",
			"debitCardActivityMTD", "debitCardActivityYTD",
			"billPay", "billPaySec", "billPayCom", "billPayMTD", "billPayYTD",
			"realizedForexVm", "realizedForexVmSec", "realizedForexVmCom",
			"realizedForexVmMTD", "realizedForexVmYTD",
			"ipoSubscription", "ipoSubscriptionSec", "ipoSubscriptionCom",
			"ipoSubscriptionMTD", "ipoSubscriptionYTD",
			"billableSalesTax", "billableSalesTaxSec", "billableSalesTaxCom",
			"billableSalesTaxMTD", "billableSalesTaxYTD",
			"commissionCreditsRedemption", "commissionCreditsRedemptionSec",
			"commissionCreditsRedemptionCom", "commissionCreditsRedemptionMTD",
			"commissionCreditsRedemptionYTD",
		),
	)
}

func statementOfFundsLineShape() *Shape {
	return newShape("StatementOfFundsLine",
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Decimal,
			"balance", "debit", "credit", "amount", "tradeQuantity",
			"tradePrice", "tradeGross", "tradeCommission", "tradeTax",
		),
		fieldsOf(DateTime, "date"),
		fieldsOf(Date, "reportDate", "settleDate"),
		fieldsOf(Text,
			"activityDescription", "buySell", "activityCode", "orderID",
			"tradeID", "tradeCode", "levelOfDetail", "transactionID",
		),
	)
}

func changeInPositionValueShape() *Shape {
	return newShape("ChangeInPositionValue",
		accountFields,
		[]Field{enumField("assetCategory", enums.KindAssetClass), {Name: "currency", Kind: Text}},
		fieldsOf(Decimal,
			"priorPeriodValue", "transactions", "mtmPriorPeriodPositions",
			"mtmTransactions", "corporateActions", "accountTransfers",
			"fxTranslationPnl", "futurePriceAdjustments", "settledCash",
			"endOfPeriodValue", "other", "linkingAdjustments",
		),
	)
}

func openPositionShape() *Shape {
	return newShape("OpenPosition",
		[]Field{enumField("side", enums.KindLongShort)},
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Date, "reportDate", "vestingDate"),
		fieldsOf(Decimal,
			"position", "markPrice", "positionValue", "openPrice",
			"costBasisPrice", "costBasisMoney", "fifoPnlUnrealized",
			"percentOfNAV", "positionValueInBase",
			"unrealizedCapitalGainsPnl", "unrealizedlFxPnl",
		),
		fieldsOf(DateTime, "openDateTime", "holdingPeriodDateTime"),
		fieldsOf(Text,
			"levelOfDetail", "originatingOrderID",
			"originatingTransactionID", "accruedInt",
		),
		codeList,
	)
}

func fxLotShape() *Shape {
	return newShape("FxLot",
		accountFields,
		[]Field{enumField("assetCategory", enums.KindAssetClass)},
		fieldsOf(Date, "reportDate"),
		fieldsOf(Text, "functionalCurrency", "fxCurrency", "lotDescription", "levelOfDetail"),
		fieldsOf(Decimal, "quantity", "costPrice", "costBasis", "closePrice", "value", "unrealizedPL"),
		fieldsOf(DateTime, "lotOpenDateTime"),
		codeList,
	)
}

func optionEAEShape() *Shape {
	return newShape("OptionEAE",
		accountFields,
		currencyFields,
		securityFields,
		[]Field{enumField("transactionType", enums.KindOptionAction)},
		fieldsOf(Date, "date"),
		fieldsOf(Decimal,
			"quantity", "tradePrice", "markPrice", "proceeds",
			"commisionsAndTax", "costBasis", "realizedPnl", "fxPnl", "mtmPnl",
		),
		fieldsOf(Text, "tradeID"),
	)
}

func tradeTransferShape() *Shape {
	return newShape("TradeTransfer",
		tradeFields,
		[]Field{
			enumField("direction", enums.KindToFrom),
			enumField("deliveredReceived", enums.KindDeliveredReceived),
		},
		fieldsOf(Text, "brokerName", "brokerAccount"),
		fieldsOf(Decimal,
			"awayBrokerCommission", "regulatoryFee", "netTradeMoney",
			"netTradeMoneyInBase", "netTradePrice",
		),
	)
}

func unbundledCommissionDetailShape() *Shape {
	return newShape("UnbundledCommissionDetail",
		[]Field{enumField("buySell", enums.KindBuySell)},
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(DateTime, "dateTime"),
		fieldsOf(Text, "exchange", "tradeID", "orderReference"),
		fieldsOf(Decimal,
			"quantity", "price", "totalCommission", "brokerExecutionCharge",
			"brokerClearingCharge", "thirdPartyExecutionCharge",
			"thirdPartyClearingCharge", "thirdPartyRegulatoryCharge",
			"regFINRATradingActivityFee", "regSection31TransactionFee",
			"regOther", "other",
		),
	)
}

func interestAccrualsCurrencyShape() *Shape {
	return newShape("InterestAccrualsCurrency",
		accountFields,
		currencyFields,
		fieldsOf(Date, "fromDate", "toDate"),
		fieldsOf(Decimal,
			"startingAccrualBalance", "interestAccrued", "accrualReversal",
			"endingAccrualBalance", "fxTranslation",
		),
	)
}

func tierInterestDetailShape() *Shape {
	return newShape("TierInterestDetail",
		accountFields,
		currencyFields,
		fieldsOf(Text, "interestType", "tierBreak", "fromAcct", "toAcct"),
		fieldsOf(Date, "valueDate"),
		fieldsOf(Decimal,
			"balanceThreshold", "securitiesPrincipal", "commoditiesPrincipal",
			"ibuklPrincipal", "totalPrincipal", "rate", "securitiesInterest",
			"commoditiesInterest", "ibuklInterest", "totalInterest",
		),
		codeList,
	)
}

func hardToBorrowDetailShape() *Shape {
	return newShape("HardToBorrowDetail",
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Date, "valueDate"),
		fieldsOf(Decimal, "quantity", "price", "value", "borrowFeeRate", "borrowFee"),
		codeList,
		fieldsOf(Text, "fromAcct", "toAcct"),
	)
}

func slbActivityShape() *Shape {
	return newShape("SLBActivity",
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Date, "date"),
		fieldsOf(Text, "slbTransactionId", "activityDescription", "type", "exchange"),
		fieldsOf(Decimal,
			"quantity", "feeRate", "collateralAmount", "markQuantity",
			"markPriorPrice", "markCurrentPrice",
		),
	)
}

func slbFeeShape() *Shape {
	return newShape("SLBFee",
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Date, "valueDate", "startDate"),
		fieldsOf(Text, "type", "exchange", "fromAcct", "toAcct"),
		fieldsOf(Decimal,
			"quantity", "collateralAmount", "feeRate", "fee", "carryCharge",
			"ticketCharge", "totalCharges", "marketFeeRate", "grossLendFee",
			"netLendFeeRate", "netLendFee",
		),
		codeList,
	)
}

func transferShape() *Shape {
	return newShape("Transfer",
		accountFields,
		currencyFields,
		securityFields,
		[]Field{
			enumField("type", enums.KindTransferType),
			enumField("direction", enums.KindInOut),
		},
		fieldsOf(Date, "reportDate", "date"),
		fieldsOf(Text, "account", "clientReference", "company", "accountName", "transactionID"),
		fieldsOf(Decimal,
			"quantity", "transferPrice", "positionAmount",
			"positionAmountInBase", "capitalGainsPnl", "cashTransfer",
			"pnlAmount", "pnlAmountInBase", "fxPnl",
		),
		codeList,
	)
}

func unsettledTransferShape() *Shape {
	return newShape("UnsettledTransfer",
		[]Field{enumField("direction", enums.KindToFrom)},
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Text, "stage", "contra", "transactionID"),
		fieldsOf(Date, "tradeDate", "targetSettlement"),
		fieldsOf(Decimal, "quantity", "tradePrice", "tradeAmount", "tradeAmountInBase"),
	)
}

func priorPeriodPositionShape() *Shape {
	return newShape("PriorPeriodPosition",
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Decimal, "priorMtmPnl", "price"),
		fieldsOf(Date, "date"),
	)
}

func corporateActionShape() *Shape {
	return newShape("CorporateAction",
		accountFields,
		currencyFields,
		securityFields,
		[]Field{enumField("type", enums.KindReorg)},
		fieldsOf(Text, "actionDescription", "transactionID"),
		fieldsOf(DateTime, "dateTime"),
		fieldsOf(Date, "reportDate"),
		fieldsOf(Decimal,
			"amount", "quantity", "fifoPnlRealized", "capitalGainsPnl",
			"fxPnl", "mtmPnl", "proceeds", "value",
		),
		codeList,
	)
}

func cashTransactionShape() *Shape {
	return newShape("CashTransaction",
		[]Field{enumField("type", enums.KindCashAction)},
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Decimal, "amount"),
		fieldsOf(DateTime, "dateTime"),
		fieldsOf(Text, "tradeID", "transactionID", "clientReference", "levelOfDetail"),
		fieldsOf(Date, "reportDate", "settleDate"),
		codeList,
	)
}

func debitCardActivityShape() *Shape {
	return newShape("DebitCardActivity",
		accountFields,
		currencyFields,
		[]Field{enumField("assetCategory", enums.KindAssetClass)},
		fieldsOf(Text, "status", "category", "merchantNameLocation"),
		fieldsOf(Date, "reportDate", "postingDate"),
		fieldsOf(DateTime, "transactionDateTime"),
		fieldsOf(Decimal, "amount"),
	)
}

func securityInfoShape() *Shape {
	return newShape("SecurityInfo",
		securityFields,
		fieldsOf(Text,
			"underlyingCategory", "subCategory", "maturity", "type",
			"currency", "settlementPolicyMethod",
		),
		fieldsOf(Date, "issueDate"),
		codeList,
	)
}

func conversionRateShape() *Shape {
	return newShape("ConversionRate",
		fieldsOf(Date, "reportDate"),
		fieldsOf(Text, "fromCurrency", "toCurrency"),
		fieldsOf(Decimal, "rate"),
	)
}

func fifoPerformanceSummaryShape() *Shape {
	return newShape("FIFOPerformanceSummaryUnderlying",
		accountFields,
		securityFields,
		fieldsOf(Date, "reportDate"),
		fieldsOf(Decimal,
			"realizedSTProfit", "realizedSTLoss", "realizedLTProfit",
			"realizedLTLoss", "totalRealizedPnl", "unrealizedProfit",
			"unrealizedLoss", "totalUnrealizedPnl", "totalFifoPnl",
			"totalRealizedCapitalGainsPnl", "totalRealizedFxPnl",
			"totalUnrealizedCapitalGainsPnl", "totalUnrealizedFxPnl",
			"totalCapitalGainsPnl", "totalFxPnl", "transferredPnl",
			"transferredCapitalGainsPnl", "transferredFxPnl",
			"unrealizedSTProfit", "unrealizedSTLoss", "unrealizedLTProfit",
			"unrealizedLTLoss", "costAdj",
		),
		codeList,
	)
}

func netStockPositionShape() *Shape {
	return newShape("NetStockPosition",
		accountFields,
		[]Field{{Name: "currency", Kind: Text}},
		securityFields,
		fieldsOf(Date, "reportDate"),
		fieldsOf(Decimal, "sharesAtIb", "sharesBorrowed", "sharesLent", "netShares"),
	)
}

func clientFeeShape() *Shape {
	return newShape("ClientFee",
		accountFields,
		currencyFields,
		fieldsOf(Text, "feeType", "description", "expenseIndicator", "tradeID", "execID", "levelOfDetail"),
		fieldsOf(DateTime, "date"),
		fieldsOf(Decimal, "revenue", "expense", "net", "revenueInBase", "expenseInBase", "netInBase"),
	)
}

func clientFeesDetailShape() *Shape {
	return newShape("ClientFeesDetail",
		accountFields,
		currencyFields,
		fieldsOf(DateTime, "date"),
		fieldsOf(Text, "tradeID", "execID", "levelOfDetail"),
		fieldsOf(Decimal,
			"totalRevenue", "totalCommission", "brokerExecutionCharge",
			"clearingCharge", "thirdPartyExecutionCharge",
			"thirdPartyRegulatoryCharge", "regFINRATradingActivityFee",
			"regSection31TransactionFee", "regOther", "totalNet",
			"totalNetInBase", "other",
		),
	)
}

func salesTaxShape() *Shape {
	return newShape("SalesTax",
		accountFields,
		currencyFields,
		securityFields,
		fieldsOf(Date, "date"),
		fieldsOf(Text,
			"country", "taxType", "payer", "taxableDescription",
			"taxableTransactionID", "transactionID",
		),
		fieldsOf(Decimal, "taxableAmount", "taxRate", "salesTax"),
		codeList,
	)
}
