package query

import (
	"regexp"
	"strconv"
	"strings"
)

// Order matters: "rs." must be stripped before "rs".
var currencyMarkers = strings.NewReplacer("₹", "", "rs.", "", "rs", "", "inr", "", "$", "", "usd", "")

var (
	budgetAmountRe = regexp.MustCompile(`([0-9]+(?:[.,][0-9]+)?)\s*([km]?)`)
	digitRunRe     = regexp.MustCompile(`[0-9][0-9,.]+`)
)

// ParseBudget turns a free-text money expression ("12k", "₹8,000",
// "under 5000") into whole currency units. Returns nil when no amount can
// be read; callers treat nil as "no constraint", never as zero.
func ParseBudget(s string) *int {
	s = strings.TrimSpace(currencyMarkers.Replace(strings.ToLower(strings.TrimSpace(s))))
	if m := budgetAmountRe.FindStringSubmatch(s); m != nil {
		num := strings.ReplaceAll(m[1], ",", "")
		val, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil
		}
		switch m[2] {
		case "k":
			val *= 1000
		case "m":
			val *= 1000000
		}
		v := int(val)
		return &v
	}
	if m := digitRunRe.FindString(s); m != "" {
		val, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			return nil
		}
		v := int(val)
		return &v
	}
	return nil
}

// ParseBudgetValue normalizes a budget field that may arrive as a JSON
// number or a string from the semantic parser.
func ParseBudgetValue(v any) *int {
	switch n := v.(type) {
	case nil:
		return nil
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	case string:
		return ParseBudget(n)
	default:
		return nil
	}
}
