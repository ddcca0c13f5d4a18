package legacyxml

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseFlag interprets the legacy platform's boolean spellings
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "checked", "yes", "true", "1":
		return true
	}
	return false
}

// parseDecimal parses a money/weight value, tolerating currency symbols and
// thousands separators. Unparseable values degrade to zero rather than
// failing the record.
func parseDecimal(v string) decimal.Decimal {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDecimalPtr is parseDecimal for optional fields: absent or
// unparseable values yield nil.
func parseDecimalPtr(v string) *decimal.Decimal {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d := parseDecimal(v)
	return &d
}

func parseInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func parseIntPtr(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// splitList breaks a comma/semicolon separated tag list into clean entries
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' }) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
