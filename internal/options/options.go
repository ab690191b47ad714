// Package options implements ordered key/value option lists with
// first-match lookup, used by the CLI for flag handling.
package options

import "strings"

// Pair is a single key/value association.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered association list. Earlier pairs shadow later ones.
type Pairs []Pair

// Lookup returns the value of the first pair matching key,
// or def when no pair matches.
func Lookup(pairs Pairs, key, def string) string {
	for _, p := range pairs {
		if p.Key == key {
			return p.Value
		}
	}
	return def
}

// Has reports whether any pair matches key.
func Has(pairs Pairs, key string) bool {
	for _, p := range pairs {
		if p.Key == key {
			return true
		}
	}
	return false
}

// ParseFlags splits args into "--key=value" / "--key value" option pairs
// and remaining positional arguments, preserving order. A flag with no
// value (trailing, or followed by another flag) gets an empty value.
func ParseFlags(args []string) (Pairs, []string) {
	var pairs Pairs
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if eq := strings.Index(name, "="); eq != -1 {
			pairs = append(pairs, Pair{Key: name[:eq], Value: name[eq+1:]})
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			pairs = append(pairs, Pair{Key: name, Value: args[i+1]})
			i++
			continue
		}
		pairs = append(pairs, Pair{Key: name})
	}
	return pairs, positional
}
