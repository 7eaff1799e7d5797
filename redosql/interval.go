package redosql

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Interval literal recognizers and body grammars. LogMiner renders interval
// columns as TO_YMINTERVAL and TO_DSINTERVAL calls; bare bodies are
// accepted too.
var (
	toYMIntervalPattern = regexp.MustCompile(`(?is)\ATO_YMINTERVAL\('(.*)'\)\z`)
	toDSIntervalPattern = regexp.MustCompile(`(?is)\ATO_DSINTERVAL\('(.*)'\)\z`)

	ymIntervalPattern = regexp.MustCompile(`\A([+-])?(\d{1,9})-(\d{1,2})\z`)
	dsIntervalPattern = regexp.MustCompile(`\A([+-])?(\d{1,9}) (\d{2}):(\d{2}):(\d{2})(?:\.(\d{0,9}))?\z`)
)

// ParseYMInterval converts a year-month interval literal into a signed
// number of calendar months.
func ParseYMInterval(value string) (int64, error) {
	text := value
	if m := toYMIntervalPattern.FindStringSubmatch(value); m != nil {
		text = m[1]
	}
	body := strings.TrimSpace(text)
	m := ymIntervalPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, fmt.Errorf("invalid year-month interval format: %s", body)
	}
	months := int64(atoi(m[3]))
	if months > 11 {
		return 0, fmt.Errorf("invalid year-month interval %q: months out of range: %d", body, months)
	}
	total := int64(atoi(m[2]))*12 + months
	if m[1] == "-" {
		total = -total
	}
	return total, nil
}

// Durations are int64 nanoseconds; day counts past this bound cannot be
// represented.
const maxIntervalDays = int(math.MaxInt64 / (24 * int64(time.Hour)))

// ParseDSInterval converts a day-second interval literal into a Duration.
func ParseDSInterval(value string) (time.Duration, error) {
	text := value
	if m := toDSIntervalPattern.FindStringSubmatch(value); m != nil {
		text = m[1]
	}
	body := strings.TrimSpace(text)
	m := dsIntervalPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, fmt.Errorf("invalid day-second interval format: %s", body)
	}
	days, hours, minutes, seconds := atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5])
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("invalid day-second interval %q: time of day out of range", body)
	}
	if days > maxIntervalDays {
		return 0, fmt.Errorf("invalid day-second interval %q: day count out of range", body)
	}
	d := time.Duration(days) * 24 * time.Hour
	clock := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(fractionNanos(m[6]))
	// The day part alone fits; the clock part may still push the sum past
	// the int64 nanosecond range.
	if clock > math.MaxInt64-d {
		return 0, fmt.Errorf("invalid day-second interval %q: duration out of range", body)
	}
	d += clock
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}
