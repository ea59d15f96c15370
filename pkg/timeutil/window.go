package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback analytics window used when none is provided.
	DefaultWindow = "30d"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"wks":    7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"m":      30 * 24 * time.Hour,
		"mo":     30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
		"y":      365 * 24 * time.Hour,
		"yr":     365 * 24 * time.Hour,
		"year":   365 * 24 * time.Hour,
		"years":  365 * 24 * time.Hour,
	}
)

// ParseWindow parses a human-friendly lookback window (for example "7d",
// "30d", "1y", or "1m2w") and returns the equivalent duration along with a
// canonical, compact representation. When the input is empty, the default
// window of thirty days is used.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	lower := strings.ToLower(trimmed)
	remaining := lower
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}

	return total, strings.Join(strings.Fields(lower), ""), nil
}

// WindowRange converts a lookback window ending today into an inclusive
// [from, to] pair of ISO dates.
func WindowRange(window string, now time.Time) (from, to string, label string, err error) {
	d, label, err := ParseWindow(window)
	if err != nil {
		return "", "", "", err
	}
	days := int(d / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	to = FormatDate(now)
	from = FormatDate(now.AddDate(0, 0, -(days - 1)))
	return from, to, label, nil
}
