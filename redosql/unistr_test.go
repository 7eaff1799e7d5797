package redosql_test

import (
	"testing"

	"github.com/streamhaus/oraredo-go/redosql"
)

func TestDecodeUnistr(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "escaped code units",
			value: `UNISTR('\0041\0042\0043')`,
			want:  "ABC",
		},
		{
			name:  "mixed literal and escaped text",
			value: `UNISTR('caf\00E9')`,
			want:  "café",
		},
		{
			name:  "surrogate pair",
			value: `UNISTR('\D83D\DE00')`,
			want:  "\U0001F600",
		},
		{
			name:  "doubled backslash",
			value: `UNISTR('a\\b')`,
			want:  `a\b`,
		},
		{
			name:  "doubled quote",
			value: `UNISTR('it''s')`,
			want:  "it's",
		},
		{
			name:  "lowercase recognizer",
			value: `unistr('\0041')`,
			want:  "A",
		},
		{
			name:  "concatenated calls",
			value: `UNISTR('\0041') || UNISTR('\0042')`,
			want:  "AB",
		},
		{
			name:  "concatenated call and quoted segment",
			value: `UNISTR('\0048') || 'i'`,
			want:  "Hi",
		},
		{
			name:  "quoted segment with doubled quote",
			value: `'what''s up'`,
			want:  "what's up",
		},
		{
			name:  "plain text passes through",
			value: "plain",
			want:  "plain",
		},
		{
			name:  "empty body",
			value: `UNISTR('')`,
			want:  "",
		},
		{
			name:    "truncated escape",
			value:   `UNISTR('\00')`,
			wantErr: true,
		},
		{
			name:    "non hex escape",
			value:   `UNISTR('\zzzz')`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := redosql.DecodeUnistr(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeUnistr(%q) = %q, want error", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeUnistr(%q): unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("DecodeUnistr(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
