package options

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	pairs := Pairs{
		{Key: "format", Value: "hex"},
		{Key: "name", Value: "brand"},
		{Key: "format", Value: "float"},
	}

	// First match wins.
	if got := Lookup(pairs, "format", "none"); got != "hex" {
		t.Errorf("Lookup(format) = %q, want hex", got)
	}
	if got := Lookup(pairs, "name", ""); got != "brand" {
		t.Errorf("Lookup(name) = %q, want brand", got)
	}
	// Default when absent.
	if got := Lookup(pairs, "missing", "fallback"); got != "fallback" {
		t.Errorf("Lookup(missing) = %q, want fallback", got)
	}
	if got := Lookup(nil, "anything", "def"); got != "def" {
		t.Errorf("Lookup on nil = %q, want def", got)
	}
}

func TestHas(t *testing.T) {
	pairs := Pairs{{Key: "verbose"}}
	if !Has(pairs, "verbose") {
		t.Error("Has(verbose) should be true")
	}
	if Has(pairs, "quiet") {
		t.Error("Has(quiet) should be false")
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		pairs    Pairs
		leftover []string
	}{
		{
			name:     "equals form",
			args:     []string{"--format=hex", "a", "b"},
			pairs:    Pairs{{Key: "format", Value: "hex"}},
			leftover: []string{"a", "b"},
		},
		{
			name:     "space form",
			args:     []string{"--name", "brand", "file.yaml"},
			pairs:    Pairs{{Key: "name", Value: "brand"}},
			leftover: []string{"file.yaml"},
		},
		{
			name:  "bare flag before another flag",
			args:  []string{"--verbose", "--format=float"},
			pairs: Pairs{{Key: "verbose"}, {Key: "format", Value: "float"}},
		},
		{
			name:  "trailing bare flag",
			args:  []string{"--verbose"},
			pairs: Pairs{{Key: "verbose"}},
		},
		{
			name:     "positionals only",
			args:     []string{"one", "two"},
			leftover: []string{"one", "two"},
		},
	}
	for _, tt := range tests {
		pairs, leftover := ParseFlags(tt.args)
		if !reflect.DeepEqual(pairs, tt.pairs) {
			t.Errorf("%s: pairs = %v, want %v", tt.name, pairs, tt.pairs)
		}
		if !reflect.DeepEqual(leftover, tt.leftover) {
			t.Errorf("%s: positionals = %v, want %v", tt.name, leftover, tt.leftover)
		}
	}
}
