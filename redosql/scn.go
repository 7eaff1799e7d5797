package redosql

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
)

// SCN is an Oracle system change number, the redo-position value that
// accompanies every mined row. The zero value is the null SCN.
type SCN uint64

// ParseSCN converts the decimal text of a system change number.
func ParseSCN(value string) (SCN, error) {
	if value == "" {
		return 0, errors.New("empty SCN")
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid SCN %q: %w", value, err)
	}
	return SCN(n), nil
}

func (s SCN) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Compare orders two change numbers: -1 when s precedes o, 0 when they are
// equal and 1 when s follows o.
func (s SCN) Compare(o SCN) int {
	return cmp.Compare(s, o)
}
