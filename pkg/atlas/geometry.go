package atlas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/framecache/internal/domain"
)

// parseNumbers reads n numbers from a brace string such as "{{1,2},{3,4}}".
func parseNumbers(s string, n int) ([]float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '{' || r == '}' {
			return ' '
		}
		return r
	}, s)
	parts := strings.Split(cleaned, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d numbers in %q, got %d", n, s, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number in %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseRect parses "{{x,y},{w,h}}".
func ParseRect(s string) (domain.Rect, error) {
	v, err := parseNumbers(s, 4)
	if err != nil {
		return domain.Rect{}, err
	}
	return domain.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// ParsePoint parses "{x,y}".
func ParsePoint(s string) (domain.Point, error) {
	v, err := parseNumbers(s, 2)
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Point{X: v[0], Y: v[1]}, nil
}

// ParseSize parses "{w,h}".
func ParseSize(s string) (domain.Size, error) {
	v, err := parseNumbers(s, 2)
	if err != nil {
		return domain.Size{}, err
	}
	return domain.Size{Width: v[0], Height: v[1]}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		ok, _ := strconv.ParseBool(b)
		return ok
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return false
}
