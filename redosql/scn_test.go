package redosql_test

import (
	"testing"

	"github.com/streamhaus/oraredo-go/redosql"
)

func TestParseSCN(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    redosql.SCN
		wantErr bool
	}{
		{name: "zero", value: "0", want: 0},
		{name: "typical", value: "281474976710655", want: 281474976710655},
		{name: "max", value: "18446744073709551615", want: redosql.SCN(1<<64 - 1)},
		{name: "empty", value: "", wantErr: true},
		{name: "negative", value: "-5", wantErr: true},
		{name: "trailing garbage", value: "12x", wantErr: true},
		{name: "overflow", value: "18446744073709551616", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := redosql.ParseSCN(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSCN(%q) = %d, want error", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSCN(%q): unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseSCN(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestSCNString(t *testing.T) {
	if got := redosql.SCN(281474976710655).String(); got != "281474976710655" {
		t.Errorf("String() = %q, want %q", got, "281474976710655")
	}
}

func TestSCNCompare(t *testing.T) {
	tests := []struct {
		a, b redosql.SCN
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{7, 7, 0},
		{0, 1<<64 - 1, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("SCN(%d).Compare(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
