// Package salary parses free-text salary range strings into numeric bounds.
// Input is user-supplied and wildly inconsistent ("5000-10000 USD", "8000+",
// "1,000 frw - 100,000 frw"), so parsing never fails: anything unreadable
// degrades to the unbounded range, which never blocks an application.
package salary

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Range is a derived (min, max) salary pair. An absent lower bound is 0 and
// an absent upper bound is +Inf.
type Range struct {
	Min float64
	Max float64
}

// Unbounded returns the widest possible range, the no-constraint default.
func Unbounded() Range {
	return Range{Min: 0, Max: math.Inf(1)}
}

// Overlaps reports whether the two ranges share at least one value.
func (r Range) Overlaps(other Range) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

// currencyTokens are stripped before numeric parsing. Longer tokens come
// first so plurals are consumed before their singular stems.
var currencyTokens = []string{
	"shillings", "shilling",
	"dollars", "dollar",
	"pounds", "pound",
	"rupees", "rupee",
	"francs", "franc",
	"euros", "euro",
	"naira", "rand",
	"usd", "eur", "gbp", "rwf", "frw", "kes", "ugx", "tzs", "ngn", "zar", "inr",
	"$", "€", "£", "¥", "₦", "₹",
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Parse converts text into a Range. It never fails; see the package comment
// for the degradation rules.
func Parse(text string) Range {
	cleaned := strings.ToLower(text)
	for _, token := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, token, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)

	if idx := strings.Index(cleaned, "-"); idx >= 0 {
		if rng, ok := parseBounds(cleaned[:idx], cleaned[idx+1:]); ok {
			return rng
		}
	}
	return extractNumbers(cleaned)
}

func parseBounds(left, right string) (Range, bool) {
	rng := Unbounded()
	if left != "" {
		min, err := strconv.ParseFloat(left, 64)
		if err != nil {
			return Range{}, false
		}
		rng.Min = min
	}
	if right != "" {
		max, err := strconv.ParseFloat(right, 64)
		if err != nil {
			return Range{}, false
		}
		rng.Max = max
	}
	return rng, true
}

// extractNumbers is the fallback for inputs without a clean hyphen split:
// zero numbers means no constraint, one number is treated as an exact figure,
// and with several the first and last bound the range.
func extractNumbers(cleaned string) Range {
	matches := numberPattern.FindAllString(cleaned, -1)
	switch len(matches) {
	case 0:
		return Unbounded()
	case 1:
		value, err := strconv.ParseFloat(matches[0], 64)
		if err != nil {
			return Unbounded()
		}
		return Range{Min: value, Max: value}
	default:
		first, errFirst := strconv.ParseFloat(matches[0], 64)
		last, errLast := strconv.ParseFloat(matches[len(matches)-1], 64)
		if errFirst != nil || errLast != nil {
			return Unbounded()
		}
		return Range{Min: first, Max: last}
	}
}
