package redosql

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// HEXTORAW('<hex>') recognizer.
var hextorawPattern = regexp.MustCompile(`(?is)\AHEXTORAW\('(.*)'\)\z`)

// DecodeHexToRaw decodes a HEXTORAW literal, or bare hex text, into the raw
// bytes it denotes.
func DecodeHexToRaw(value string) ([]byte, error) {
	text := value
	if m := hextorawPattern.FindStringSubmatch(value); m != nil {
		text = m[1]
	}
	body := strings.TrimSpace(text)
	raw, err := hex.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("invalid raw literal %q: %w", body, err)
	}
	return raw, nil
}
