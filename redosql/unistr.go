package redosql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

// UNISTR('<text>') recognizer. National-charset strings may arrive as a
// ||-concatenation of UNISTR calls and plain quoted segments.
var unistrPattern = regexp.MustCompile(`(?is)\AUNISTR\('(.*)'\)\z`)

// DecodeUnistr decodes a UNISTR literal into the string it denotes. Inside
// a UNISTR body a backslash introduces a four-hex-digit UTF-16 code unit
// (surrogate pairs combine into one rune), a doubled backslash is a literal
// backslash and a doubled quote is a literal quote. Segments of a
// ||-concatenation are decoded independently; text that is neither a UNISTR
// call nor a quoted segment passes through unchanged.
func DecodeUnistr(value string) (string, error) {
	var sb strings.Builder
	// Concatenation is resolved textually; a || inside a body is a
	// separator.
	for _, part := range strings.Split(value, "||") {
		part = strings.TrimSpace(part)
		switch m := unistrPattern.FindStringSubmatch(part); {
		case m != nil:
			decoded, err := decodeUnistrBody(m[1])
			if err != nil {
				return "", err
			}
			sb.WriteString(decoded)
		case len(part) >= 2 && strings.HasPrefix(part, "'") && strings.HasSuffix(part, "'"):
			sb.WriteString(strings.ReplaceAll(part[1:len(part)-1], "''", "'"))
		default:
			sb.WriteString(part)
		}
	}
	return sb.String(), nil
}

func decodeUnistrBody(body string) (string, error) {
	var sb strings.Builder
	var units []uint16
	flush := func() {
		if len(units) > 0 {
			for _, r := range utf16.Decode(units) {
				sb.WriteRune(r)
			}
			units = units[:0]
		}
	}
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == '\\' && i+1 < len(body) && body[i+1] == '\\':
			flush()
			sb.WriteByte('\\')
			i += 2
		case c == '\\':
			if i+5 > len(body) {
				return "", fmt.Errorf("invalid UNISTR escape at offset %d: %s", i, body)
			}
			u, err := strconv.ParseUint(body[i+1:i+5], 16, 16)
			if err != nil {
				return "", fmt.Errorf("invalid UNISTR escape %q: %w", body[i:i+5], err)
			}
			units = append(units, uint16(u))
			i += 5
		case c == '\'':
			flush()
			sb.WriteByte('\'')
			if i+1 < len(body) && body[i+1] == '\'' {
				i += 2
			} else {
				i++
			}
		default:
			flush()
			sb.WriteByte(c)
			i++
		}
	}
	flush()
	return sb.String(), nil
}
