package models

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the longest leading decimal literal of a string.
var numericPrefix = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?`)

// maxExponent bounds what a float64 can represent; magnitudes beyond it in
// either direction count as 0.
const maxExponent = 308

// maxFracDigits caps the fractional digits kept from a cost string.
const maxFracDigits = 20

// ParseCost reads the leading numeric part of a cost string, so "12.50 USD"
// is 12.50. Missing, empty or non-numeric costs are zero.
func ParseCost(cost *string) decimal.Decimal {
	if cost == nil {
		return decimal.Zero
	}
	s := strings.TrimLeftFunc(*cost, unicode.IsSpace)
	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero
	}
	sign, whole, frac, exp := m[1], m[2], m[3], m[4]
	if whole == "" && frac == "" {
		return decimal.Zero
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > maxFracDigits {
		frac = frac[:maxFracDigits]
	}

	var (
		b    strings.Builder
		expN int
	)
	b.WriteString(sign)
	b.WriteString(whole)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if exp != "" {
		n, err := strconv.Atoi(exp)
		if err != nil || n > maxExponent || n < -maxExponent {
			return decimal.Zero
		}
		b.WriteByte('e')
		b.WriteString(strconv.Itoa(n))
		expN = n
	}
	if digits := len(strings.TrimLeft(whole, "0")); digits-1+expN > maxExponent {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// TotalCost sums entry costs and renders the total with two fractional
// digits.
func TotalCost(entries []MaintenanceEntry) string {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(ParseCost(e.Cost))
	}
	return total.StringFixed(2)
}
