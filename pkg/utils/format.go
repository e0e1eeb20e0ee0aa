package utils

import "strconv"

// FormatRupee renders an amount as "₹12,000" with thousands separators.
func FormatRupee(v int) string {
	n := v
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) > 3 {
		out := make([]byte, 0, len(s)+len(s)/3)
		lead := len(s) % 3
		if lead == 0 {
			lead = 3
		}
		out = append(out, s[:lead]...)
		for i := lead; i < len(s); i += 3 {
			out = append(out, ',')
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
