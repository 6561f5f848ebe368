// Package formatting converts byte sizes to and from human-readable strings
// such as "64KB".
package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var units = []string{
	"B", "KB", "MB",
	"GB", "TB", "PB",
	"EB", "ZB", "YB",
}

var bytesPattern = regexp.MustCompile(`^(\d+\.?\d*)\s*([A-Za-z]*)$`)

// ByteSize is a byte count that reads and writes as a human-readable string
// in config files and environment variables.
type ByteSize int64

// Int64 returns the byte count.
func (b ByteSize) Int64() int64 {
	return int64(b)
}

// String formats the size with up to one decimal place.
func (b ByteSize) String() string {
	return FormatBytes(int64(b), 1)
}

// MarshalText implements encoding.TextMarshaler.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBytes.
func (b *ByteSize) UnmarshalText(text []byte) error {
	n, err := ParseBytes(string(text))
	if err != nil {
		return err
	}
	*b = ByteSize(n)
	return nil
}

// FormatBytes converts a byte count to a human-readable string using base-1024
// units. Negative precision values are clamped to zero; trailing zero
// decimals are dropped.
func FormatBytes(n int64, precision int) string {
	if n <= 0 {
		return "0B"
	}

	if precision < 0 {
		precision = 0
	}

	f := float64(n)
	i := int(math.Floor(math.Log(f) / math.Log(1024)))
	i = min(i, len(units)-1)

	size := f / math.Pow(1024, float64(i))
	formatted := strconv.FormatFloat(size, 'f', precision, 64)
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(strings.TrimRight(formatted, "0"), ".")
	}

	return formatted + units[i]
}

// ParseBytes parses a human-readable byte size string (e.g., "64KB") into a
// byte count. Units B through YB are base-1024 and case-insensitive; a bare
// number is bytes and a space may separate number and unit.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	matches := bytesPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	unit := strings.ToUpper(matches[2])
	if unit == "" {
		return int64(value), nil
	}

	idx := slices.Index(units, unit)
	if idx == -1 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}

	return int64(value * math.Pow(1024, float64(idx))), nil
}
