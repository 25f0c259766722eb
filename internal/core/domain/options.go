package domain

import (
	"maps"
	"strconv"
)

// Options is the flat configuration handed to a transform engine.
// Unrecognized keys are carried through untouched.
type Options map[string]any

// DefaultOptions returns the options applied when the config does not override them.
func DefaultOptions() Options {
	return Options{
		"indent_size":       4,
		"preserve_newlines": true,
		"packers":           true,
	}
}

// Merge returns a copy of o with every key of override applied on top.
func (o Options) Merge(override Options) Options {
	merged := make(Options, len(o)+len(override))
	maps.Copy(merged, o)
	maps.Copy(merged, override)
	return merged
}

// Int returns the integer value for key, or def when absent or not numeric.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Bool returns the boolean value for key, or def when absent or not a boolean.
func (o Options) Bool(key string, def bool) bool {
	switch v := o[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// String returns the string value for key, or def when absent.
func (o Options) String(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}
