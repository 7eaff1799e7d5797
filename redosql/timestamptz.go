package redosql

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TO_TIMESTAMP_TZ('<text>') recognizer and its body grammar: the canonical
// timestamp grammar followed by an optional space and a +HH:MM or +HH
// offset. LogMiner renders zoned timestamps with a numeric offset, never a
// region name.
var (
	toTimestampTZPattern = regexp.MustCompile(`(?is)\ATO_TIMESTAMP_TZ\('(.*)'\)\z`)
	timestampTZPattern   = regexp.MustCompile(`\A(\d{4,9})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})(?:\.(\d{0,9}))? ?([+-])(\d{2})(?::(\d{2}))?\z`)
)

// ParseTimestampTZ converts a zoned timestamp literal into an instant
// carrying the literal's own fixed offset. Bare bodies are accepted the
// same way ParseTimestamp accepts them.
func ParseTimestampTZ(value string) (time.Time, error) {
	text := value
	if m := toTimestampTZPattern.FindStringSubmatch(value); m != nil {
		text = m[1]
	}
	body := strings.TrimSpace(text)
	m := timestampTZPattern.FindStringSubmatch(body)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid zoned timestamp format: %s", body)
	}
	dt, err := newDateTime(EraCE, m[:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid zoned timestamp %q: %w", body, err)
	}
	hours, minutes := atoi(m[9]), atoi(m[10])
	offset := hours*3600 + minutes*60
	if minutes > 59 || offset > 18*3600 {
		return time.Time{}, fmt.Errorf("invalid zoned timestamp %q: zone offset out of range", body)
	}
	if m[8] == "-" {
		offset = -offset
	}
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, time.FixedZone("", offset)), nil
}
