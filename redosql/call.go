package redosql

import (
	"fmt"
	"regexp"
)

// Recognizer patterns for wrapped literals. Both are anchored so that
// classification is full-string matching, case-insensitive, with dot-all
// argument capture.
var (
	toTimestampPattern = regexp.MustCompile(`(?is)\ATO_TIMESTAMP\('(.*)'\)\z`)
	toDatePattern      = regexp.MustCompile(`(?is)\ATO_DATE\('(.*)',[ ]*'(.*)'\)\z`)
)

// Oracle format models emitted for rewritten TO_TIMESTAMP literals.
const (
	// TimestampFormat is the explicit format attached to a canonical
	// timestamp body.
	TimestampFormat = "YYYY-MM-DD HH24:MI:SS.FF"
	// TimestampMeridianFormat is attached when the body carries an AM or
	// PM marker.
	TimestampMeridianFormat = "YYYY-MM-DD HH24:MI:SS.FF A"
)

// CallKind classifies a raw literal against the recognizer patterns.
type CallKind int

const (
	// CallNone marks text matching neither recognizer.
	CallNone CallKind = iota
	// CallTimestamp marks a single-argument TO_TIMESTAMP('<text>') literal.
	CallTimestamp
	// CallDate marks a two-argument TO_DATE('<text>', '<format>') literal.
	CallDate
)

// Call is a classified literal with its captured arguments. Text is the
// first quoted argument, Format the second; both are empty for CallNone.
type Call struct {
	Kind   CallKind
	Text   string
	Format string
}

// ParseCall classifies value against the TO_TIMESTAMP and TO_DATE
// recognizers, in that order. Classification cannot fail: unrecognized
// input yields a CallNone call.
func ParseCall(value string) Call {
	if m := toTimestampPattern.FindStringSubmatch(value); m != nil {
		return Call{Kind: CallTimestamp, Text: m[1]}
	}
	if m := toDatePattern.FindStringSubmatch(value); m != nil {
		return Call{Kind: CallDate, Text: m[1], Format: m[2]}
	}
	return Call{}
}

// String renders the canonical function-call form of the classified
// literal. A CallNone call renders its (empty) text.
func (c Call) String() string {
	switch c.Kind {
	case CallTimestamp:
		return fmt.Sprintf("TO_TIMESTAMP('%s')", c.Text)
	case CallDate:
		return fmt.Sprintf("TO_DATE('%s', '%s')", c.Text, c.Format)
	default:
		return c.Text
	}
}

// RewriteFunctionCall converts a recognized TO_TIMESTAMP literal into its
// two-argument form carrying an explicit format model, so the call can be
// replayed against a session with any NLS configuration. TO_DATE literals
// already carry their format and are returned unchanged. The second return
// is false when value matches neither recognizer; unrecognized text is not
// an error.
func RewriteFunctionCall(value string) (string, bool) {
	switch call := ParseCall(value); call.Kind {
	case CallTimestamp:
		format := TimestampFormat
		if hasMeridianMarker(call.Text) {
			format = TimestampMeridianFormat
		}
		return fmt.Sprintf("TO_TIMESTAMP('%s', '%s')", call.Text, format), true
	case CallDate:
		return value, true
	default:
		return "", false
	}
}
