// Package dateutils infers and parses the date and time encodings used by
// Flex reports. The report generator's textual formats are configurable and
// carry no in-band format tag, so the format must be recognized from the
// string's shape alone: its length, its delimiter counts, and its character
// classes.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Recognized date formats, keyed by (length, count of '/'):
//
//	8, 0  -> yyyyMMdd
//	8, 2  -> MM/dd/yy
//	9, 0  -> dd-MMM-yy
//	10, 0 -> yyyy-MM-dd
//	10, 2 -> MM/dd/yyyy
//
// The two slash-delimited numeric formats cannot be told apart from their
// European dd/MM counterparts; dayFirst selects the convention. Configure
// reports for ISO-8601 (yyyy-MM-dd) to avoid the ambiguity entirely.

// Recognized time string lengths: HHmmss (6) and HH:mm:ss (8).
var timeLengths = []int{6, 8}

// datetimeSeparators lists the date/time separator characters a report may
// be configured with, in scan order.
var datetimeSeparators = []string{";", ",", " "}

var monthAbbrevs = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseDate parses a date string in any of the five recognized formats.
// dayFirst swaps day and month for the two slash-delimited numeric formats
// only; the ISO and month-abbreviation formats are unambiguous.
func ParseDate(value string, dayFirst bool) (time.Time, error) {
	slashes := strings.Count(value, "/")
	var year, month, day int
	var err error
	switch {
	case len(value) == 8 && slashes == 0:
		year, month, day, err = parseCompact(value)
	case len(value) == 8 && slashes == 2:
		year, month, day, err = parseSlashed(value, 2, dayFirst)
	case len(value) == 9 && slashes == 0:
		year, month, day, err = parseMonthAbbrev(value)
	case len(value) == 10 && slashes == 0:
		year, month, day, err = parseISO(value)
	case len(value) == 10 && slashes == 2:
		year, month, day, err = parseSlashed(value, 4, dayFirst)
	default:
		return time.Time{}, fmt.Errorf("%q does not match any recognized date format", value)
	}
	if err != nil {
		return time.Time{}, err
	}
	if err := checkMonthDay(month, day); err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", value, err)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible dates (Feb 30 becomes Mar 1); a
	// changed component means the input was not a real calendar date.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%q: day %d does not exist in month %d", value, day, month)
	}
	return t, nil
}

// ParseTime parses a time string as HHmmss or HH:mm:ss.
func ParseTime(value string) (TimeOfDay, error) {
	var hh, mm, ss string
	switch {
	case len(value) == 6 && !strings.Contains(value, ":"):
		hh, mm, ss = value[:2], value[2:4], value[4:]
	case len(value) == 8 && strings.Count(value, ":") == 2:
		parts := strings.Split(value, ":")
		hh, mm, ss = parts[0], parts[1], parts[2]
		if len(hh) != 2 || len(mm) != 2 || len(ss) != 2 {
			return TimeOfDay{}, fmt.Errorf("%q cannot be parsed as HH:mm:ss", value)
		}
	default:
		return TimeOfDay{}, fmt.Errorf("%q does not match any recognized time format", value)
	}
	hour, err1 := atoi2(hh)
	minute, err2 := atoi2(mm)
	second, err3 := atoi2(ss)
	if err1 != nil || err2 != nil || err3 != nil {
		return TimeOfDay{}, fmt.Errorf("%q cannot be parsed as a time", value)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%q: time out of range", value)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// ParseDateTime parses a combined date/time string. The configured separator
// is inferred by scanning for the candidate separators; with no separator
// present the value is tried as a bare date (midnight), then brute-forced by
// slicing each known time-string length off the end. Zero or multiple valid
// splits is an ambiguity error.
func ParseDateTime(value string, dayFirst bool) (time.Time, error) {
	// Some old reports use ", " as the separator.
	value = strings.ReplaceAll(value, ", ", ",")

	var found []string
	for _, sep := range datetimeSeparators {
		if strings.Contains(value, sep) {
			found = append(found, sep)
		}
	}
	switch len(found) {
	case 0:
		// Best case: a bare date with no time-of-day.
		if date, err := ParseDate(value, dayFirst); err == nil {
			return date, nil
		}
		return splitWithoutSeparator(value, dayFirst)
	case 1:
		sep := found[0]
		if strings.Count(value, sep) != 1 {
			return time.Time{}, fmt.Errorf("%q: repeated date/time separator %q", value, sep)
		}
		datestr, timestr, _ := strings.Cut(value, sep)
		return mergeDateTime(datestr, stripOffset(timestr), dayFirst)
	default:
		return time.Time{}, fmt.Errorf("%q: multiple date/time separators %v", value, found)
	}
}

// splitWithoutSeparator brute-forces the date/time boundary of a
// null-separated value. The split is accepted only if exactly one candidate
// time length yields both a valid date and a valid time.
func splitWithoutSeparator(value string, dayFirst bool) (time.Time, error) {
	var hits []time.Time
	for _, n := range timeLengths {
		if len(value) <= n {
			continue
		}
		merged, err := mergeDateTime(value[:len(value)-n], value[len(value)-n:], dayFirst)
		if err == nil {
			hits = append(hits, merged)
		}
	}
	if len(hits) != 1 {
		return time.Time{}, fmt.Errorf("%q does not split unambiguously into date and time", value)
	}
	return hits[0], nil
}

func mergeDateTime(datestr, timestr string, dayFirst bool) (time.Time, error) {
	date, err := ParseDate(datestr, dayFirst)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := ParseTime(timestr)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(tod.Hour)*time.Hour +
		time.Duration(tod.Minute)*time.Minute +
		time.Duration(tod.Second)*time.Second), nil
}

// stripOffset drops a trailing timezone offset that some old reports append
// to the time half, e.g. "134413-0500".
func stripOffset(timestr string) string {
	if i := strings.IndexAny(timestr, "+-"); i >= 0 {
		return timestr[:i]
	}
	return timestr
}

// ExpandCentury turns a two-digit year into a four-digit year using the
// pivot rule: values above 68 fall in the 1900s, the rest in the 2000s.
func ExpandCentury(year int) int {
	if year > 68 {
		return 1900 + year
	}
	return 2000 + year
}

func checkMonthDay(month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("day %d out of range", day)
	}
	return nil
}

// parseCompact parses yyyyMMdd.
func parseCompact(value string) (year, month, day int, err error) {
	year, err = atoiWidth(value[:4], 4)
	if err == nil {
		month, err = atoi2(value[4:6])
	}
	if err == nil {
		day, err = atoi2(value[6:])
	}
	if err != nil {
		err = fmt.Errorf("%q cannot be parsed as yyyyMMdd", value)
	}
	return year, month, day, err
}

// parseISO parses yyyy-MM-dd.
func parseISO(value string) (year, month, day int, err error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return 0, 0, 0, fmt.Errorf("%q cannot be parsed as yyyy-MM-dd", value)
	}
	year, err = atoiWidth(parts[0], 4)
	if err == nil {
		month, err = atoi2(parts[1])
	}
	if err == nil {
		day, err = atoi2(parts[2])
	}
	if err != nil {
		err = fmt.Errorf("%q cannot be parsed as yyyy-MM-dd", value)
	}
	return year, month, day, err
}

// parseSlashed parses MM/dd/yy or MM/dd/yyyy (dd/MM with dayFirst).
func parseSlashed(value string, yearWidth int, dayFirst bool) (year, month, day int, err error) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != yearWidth {
		return 0, 0, 0, fmt.Errorf("%q cannot be parsed as a slash-delimited date", value)
	}
	month, err = atoi2(parts[0])
	if err == nil {
		day, err = atoi2(parts[1])
	}
	if err == nil {
		year, err = atoiWidth(parts[2], yearWidth)
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%q cannot be parsed as a slash-delimited date", value)
	}
	if yearWidth == 2 {
		year = ExpandCentury(year)
	}
	if dayFirst {
		month, day = day, month
	}
	return year, month, day, nil
}

// parseMonthAbbrev parses dd-MMM-yy, e.g. "02-JAN-11".
func parseMonthAbbrev(value string) (year, month, day int, err error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 3 || len(parts[2]) != 2 {
		return 0, 0, 0, fmt.Errorf("%q cannot be parsed as dd-MMM-yy", value)
	}
	day, err = atoi2(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%q cannot be parsed as dd-MMM-yy", value)
	}
	m, ok := monthAbbrevs[strings.ToUpper(parts[1])]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%q: unknown month %q", value, parts[1])
	}
	year, err = atoiWidth(parts[2], 2)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%q cannot be parsed as dd-MMM-yy", value)
	}
	return ExpandCentury(year), int(m), day, nil
}

func atoi2(s string) (int, error) {
	return atoiWidth(s, 2)
}

// atoiWidth parses a fixed-width base-10 integer, rejecting the signs and
// spaces strconv.Atoi would otherwise accept.
func atoiWidth(s string, width int) (int, error) {
	if len(s) != width {
		return 0, fmt.Errorf("%q: expected %d digits", s, width)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not numeric", s)
		}
	}
	return strconv.Atoi(s)
}
