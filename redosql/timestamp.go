// Package redosql converts value literals captured from Oracle LogMiner
// redo and undo SQL into Go values.
//
// LogMiner renders column values as SQL text: plain timestamps arrive as
// TO_TIMESTAMP('...') calls, dates as TO_DATE('...', '...') calls, zoned
// timestamps as TO_TIMESTAMP_TZ, intervals as TO_YMINTERVAL and
// TO_DSINTERVAL, national-charset strings as UNISTR and raw columns as
// HEXTORAW. The functions in this package recognize those wrappers and
// normalize the bodies so that a change-data pipeline can hand values
// downstream without touching a database session.
//
// # Example
//
//	instant, err := redosql.ParseTimestamp("TO_TIMESTAMP('2024-01-15 10:30:00.123456789')")
//	if err != nil {
//		// the literal is not a recognized timestamp shape
//	}
//
// All recognizers and grammars are compiled once at package initialization
// and are read-only afterwards; every function is safe for concurrent use.
package redosql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// GMT is the reference zone literal bodies are anchored to. LogMiner renders
// timestamps without zone information; interpreting the wall-clock fields at
// a fixed zero offset keeps instants stable across mining sessions.
var GMT = time.FixedZone("GMT", 0)

// Era distinguishes dates before and after year 1 of the proleptic ISO
// calendar. The numeric values are the ISO era indexes.
type Era int

const (
	// EraBCE marks dates before the current era, signaled in redo SQL by a
	// leading minus sign on the literal body.
	EraBCE Era = iota
	// EraCE marks dates in the current era.
	EraCE
)

func (e Era) String() string {
	switch e {
	case EraBCE:
		return "BCE"
	case EraCE:
		return "CE"
	default:
		return fmt.Sprintf("Era(%d)", int(e))
	}
}

// DateTime holds the wall-clock fields of a parsed literal body together
// with the calendar era. Year is the year of era and is always >= 1; a
// before-current-era year Y corresponds to proleptic ISO year 1-Y.
type DateTime struct {
	Era        Era
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Time anchors the wall-clock fields to the GMT reference zone.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.prolepticYear(), dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, GMT)
}

func (dt DateTime) prolepticYear() int {
	if dt.Era == EraBCE {
		return 1 - dt.Year
	}
	return dt.Year
}

// Timestamp body grammars. The canonical grammar is year-month-day with a
// colon-separated time of day and an optional fraction of 0 to 9 digits;
// the time of day is optional only on the date path. The meridian grammar
// is the day-first form with dot-separated time, a 1-12 clock hour and an
// AM or PM marker.
var (
	timestampPattern = regexp.MustCompile(`\A(\d{4,9})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})(?:\.(\d{0,9}))?\z`)
	datePattern      = regexp.MustCompile(`\A(\d{4,9})-(\d{2})-(\d{2})(?: (\d{2}):(\d{2}):(\d{2})(?:\.(\d{0,9}))?)?\z`)
	meridianPattern  = regexp.MustCompile(`(?i)\A(\d{2})-([A-Z]{3})-(\d{2}) (\d{2})\.(\d{2})\.(\d{2})(?:\.(\d{0,9}))? (AM|PM)\z`)
)

var monthsByAbbrev = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParseTimestamp converts a timestamp or date literal into an absolute
// instant anchored to the GMT reference zone.
//
// A TO_TIMESTAMP('<text>') literal parses <text> as a timestamp body and a
// TO_DATE('<text>', '<format>') literal parses <text> as a date body; the
// format argument carries no information the grammars do not. Anything else
// is parsed as a bare timestamp body. A body whose trimmed text starts with
// '-' denotes a date before the current era.
func ParseTimestamp(value string) (time.Time, error) {
	switch call := ParseCall(value); call.Kind {
	case CallTimestamp:
		return parseTimestampBody(call.Text)
	case CallDate:
		return parseDateBody(call.Text)
	default:
		return parseTimestampBody(value)
	}
}

func parseTimestampBody(text string) (time.Time, error) {
	body, era := splitEra(strings.TrimSpace(text))
	dt, err := parseDateTime(body, era)
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(), nil
}

// parseDateBody differs from the timestamp path in two ways: the time of
// day is optional, and dates before the current era are pinned to midnight
// even when the body carries a valid time of day.
func parseDateBody(text string) (time.Time, error) {
	body, era := splitEra(strings.TrimSpace(text))
	dt, err := parseDate(body, era)
	if err != nil {
		return time.Time{}, err
	}
	if era == EraBCE {
		dt.Hour, dt.Minute, dt.Second, dt.Nanosecond = 0, 0, 0, 0
	}
	return dt.Time(), nil
}

// splitEra strips the leading before-current-era marker from a trimmed
// body. The remainder is not re-trimmed: "- 2024..." keeps its leading
// space and fails the grammar.
func splitEra(body string) (string, Era) {
	if strings.HasPrefix(body, "-") {
		return body[1:], EraBCE
	}
	return body, EraCE
}

// hasMeridianMarker reports whether text carries a space-prefixed AM or PM
// marker past its first character. The check is exact-case even though the
// meridian grammar itself matches case-insensitively.
func hasMeridianMarker(text string) bool {
	return strings.Index(text, " AM") > 0 || strings.Index(text, " PM") > 0
}

func parseDateTime(body string, era Era) (DateTime, error) {
	if hasMeridianMarker(body) {
		return parseMeridianDateTime(body, era)
	}
	m := timestampPattern.FindStringSubmatch(body)
	if m == nil {
		return DateTime{}, fmt.Errorf("invalid timestamp format: %s", body)
	}
	dt, err := newDateTime(era, m)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid timestamp %q: %w", body, err)
	}
	return dt, nil
}

func parseDate(body string, era Era) (DateTime, error) {
	m := datePattern.FindStringSubmatch(body)
	if m == nil {
		return DateTime{}, fmt.Errorf("invalid date format: %s", body)
	}
	dt, err := newDateTime(era, m)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid date %q: %w", body, err)
	}
	return dt, nil
}

func parseMeridianDateTime(body string, era Era) (DateTime, error) {
	m := meridianPattern.FindStringSubmatch(body)
	if m == nil {
		return DateTime{}, fmt.Errorf("invalid timestamp format: %s", body)
	}
	month, ok := monthsByAbbrev[strings.ToUpper(m[2])]
	if !ok {
		return DateTime{}, fmt.Errorf("invalid timestamp %q: unknown month %q", body, m[2])
	}
	clock := atoi(m[4])
	if clock < 1 || clock > 12 {
		return DateTime{}, fmt.Errorf("invalid timestamp %q: clock hour out of range: %d", body, clock)
	}
	dt := DateTime{
		Era:        era,
		Year:       2000 + atoi(m[3]),
		Month:      month,
		Day:        atoi(m[1]),
		Hour:       meridianHour(clock, strings.EqualFold(m[8], "PM")),
		Minute:     atoi(m[5]),
		Second:     atoi(m[6]),
		Nanosecond: fractionNanos(m[7]),
	}
	if err := dt.validate(); err != nil {
		return DateTime{}, fmt.Errorf("invalid timestamp %q: %w", body, err)
	}
	return dt, nil
}

// newDateTime assembles and validates canonical-grammar captures. Empty
// time-of-day captures (date bodies without a time portion) resolve to
// midnight.
func newDateTime(era Era, m []string) (DateTime, error) {
	dt := DateTime{
		Era:        era,
		Year:       atoi(m[1]),
		Month:      time.Month(atoi(m[2])),
		Day:        atoi(m[3]),
		Hour:       atoi(m[4]),
		Minute:     atoi(m[5]),
		Second:     atoi(m[6]),
		Nanosecond: fractionNanos(m[7]),
	}
	if err := dt.validate(); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

func (dt DateTime) validate() error {
	if dt.Year < 1 {
		return fmt.Errorf("year of era out of range: %d", dt.Year)
	}
	if dt.Month < time.January || dt.Month > time.December {
		return fmt.Errorf("month out of range: %d", int(dt.Month))
	}
	if dt.Day < 1 || dt.Day > daysIn(dt.Month, dt.prolepticYear()) {
		return fmt.Errorf("day out of range: %d", dt.Day)
	}
	if dt.Hour > 23 {
		return fmt.Errorf("hour out of range: %d", dt.Hour)
	}
	if dt.Minute > 59 {
		return fmt.Errorf("minute out of range: %d", dt.Minute)
	}
	if dt.Second > 59 {
		return fmt.Errorf("second out of range: %d", dt.Second)
	}
	return nil
}

// meridianHour converts a 1-12 clock hour and meridian marker to an hour of
// day: 12 AM is midnight, 12 PM is noon.
func meridianHour(clock int, pm bool) int {
	h := clock % 12
	if pm {
		h += 12
	}
	return h
}

// fractionNanos right-pads a fractional-second capture of 0 to 9 digits to
// nanoseconds. Fractions are not zero-padded by the producer: "123" is
// 123ms, not 123ns.
func fractionNanos(digits string) int {
	n := atoi(digits)
	for i := len(digits); i < 9; i++ {
		n *= 10
	}
	return n
}

var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysIn(month time.Month, year int) int {
	if month == time.February && isLeap(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// atoi converts digits already bounded by a grammar pattern; an empty
// capture is zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
