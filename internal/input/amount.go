// Package input turns free-text answers into amounts.
package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Sanitize keeps only digits and '.' from raw and parses what is left.
// ok is false when nothing usable remains ("", "abc", "1.2.3", ".") or the
// number is too large for a float64.
// Zero is a valid amount.
//
//	Sanitize("12a.3b") -> 12.3, true
//	Sanitize("0")      -> 0, true
//	Sanitize("abc")    -> 0, false
func Sanitize(raw string) (amount float64, ok bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Format renders an amount without float noise: 4.5 -> "4.5", 0.1+0.2 -> "0.3".
// Sums can overflow to ±Inf; those are printed as-is.
func Format(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'g', -1, 64)
	}
	return decimal.NewFromFloat(amount).Round(8).String()
}
