// internal/block/config.go
//
// Tolerant accessors for the open block-config mapping.
//
// Every variant declares its own default for every key it reads; a
// missing or uncoercible value falls back to that default and never
// errors.  JSON numbers decode as float64, so Int has to cope with
// float64, int, and numeric strings alike.
package block

import (
	"strconv"
	"strings"
)

// Config is the schema-less per-block configuration mapping.
type Config map[string]any

// Str returns the string at key, or def when absent or not a string.
func (c Config) Str(key, def string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Int returns the integer at key, or def when absent or uncoercible.
func (c Config) Int(key string, def int) int {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return def
}

// Bool returns the boolean at key, or def when absent or uncoercible.
// The strings "true"/"false" (any case) coerce, anything else does not.
func (c Config) Bool(key string, def bool) bool {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(b))); err == nil {
			return parsed
		}
	}
	return def
}

// clampInt pins v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
