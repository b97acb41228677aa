// Package currencyutils holds the closed set of currency codes accepted in
// Flex reports and the decimal-amount parsing shared by the converters.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// iso4217 is the ISO 4217 currency-code list as carried by the report
// generator, including a few retired codes still present in old reports.
var iso4217 = []string{
	"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN",
	"BAM", "BBD", "BDT", "BGN", "BHD", "BIF", "BMD", "BND", "BOB", "BOV",
	"BRL", "BSD", "BTN", "BWP", "BYR", "BZD", "CAD", "CDF", "CHE", "CHF",
	"CHW", "CLF", "CLP", "CNY", "COP", "COU", "CRC", "CUC", "CUP", "CVE",
	"CZK", "DJF", "DKK", "DOP", "DZD", "EEK", "EGP", "ERN", "ETB", "EUR",
	"FJD", "FKP", "GBP", "GEL", "GHS", "GIP", "GMD", "GNF", "GTQ", "GYD",
	"HKD", "HNL", "HRK", "HTG", "HUF", "IDR", "ILS", "INR", "IQD", "IRR",
	"ISK", "JMD", "JOD", "JPY", "KES", "KGS", "KHR", "KMF", "KPW", "KRW",
	"KWD", "KYD", "KZT", "LAK", "LBP", "LKR", "LRD", "LSL", "LTL", "LVL",
	"LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRO", "MUR",
	"MVR", "MWK", "MXN", "MXV", "MYR", "MZN", "NAD", "NGN", "NIO", "NOK",
	"NPR", "NZD", "OMR", "PAB", "PEN", "PGK", "PHP", "PKR", "PLN", "PYG",
	"QAR", "RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG", "SEK",
	"SGD", "SHP", "SLL", "SOS", "SRD", "STD", "SVC", "SYP", "SZL", "THB",
	"TJS", "TMT", "TND", "TOP", "TRY", "TTD", "TWD", "TZS", "UAH", "UGX",
	"USD", "USN", "USS", "UYI", "UYU", "UZS", "VEF", "VND", "VUV", "WST",
	"XAF", "XAG", "XAU", "XBA", "XBB", "XBC", "XBD", "XCD", "XDR", "XOF",
	"XPD", "XPF", "XPT", "XTS", "XXX", "YER", "ZAR", "ZMK", "ZWL",
}

// codes is the accepted currency set: ISO 4217 plus the report-specific
// pseudo-codes. Never mutated after init.
var codes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(iso4217)+3)
	for _, c := range iso4217 {
		m[c] = struct{}{}
	}
	m["CNH"] = struct{}{}          // RMB traded in Hong Kong
	m["BASE_SUMMARY"] = struct{}{} // pseudo-code in NAV/performance reports
	m[""] = struct{}{}             // Lot elements may carry a blank currency
	return m
}()

// Valid reports whether code is an accepted currency code.
func Valid(code string) bool {
	_, ok := codes[code]
	return ok
}

// Validate returns an error naming the offending value when code is not in
// the accepted currency set.
func Validate(code string) error {
	if !Valid(code) {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// ParseAmount parses a report-encoded decimal amount. The generator writes
// numbers with thousands-separator commas and a dot radix point; the commas
// are stripped and the remainder parsed as an exact base-10 decimal.
func ParseAmount(value string) (decimal.Decimal, error) {
	standardized := strings.ReplaceAll(value, ",", "")
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot parse amount %q: %w", value, err)
	}
	return amount, nil
}
