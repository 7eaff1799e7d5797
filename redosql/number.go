package redosql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ParseNumber converts the text of a NUMBER, FLOAT or binary-float column
// value into an arbitrary-precision decimal. Oracle renders binary-float
// specials as Inf, -Inf and Nan, all of which apd understands.
func ParseNumber(value string) (*apd.Decimal, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return nil, errors.New("empty number literal")
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %w", text, err)
	}
	return d, nil
}
