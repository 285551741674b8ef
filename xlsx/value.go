package xlsx

import (
	"math"
	"strconv"
	"strings"

	"github.com/aerissecure/sheetconv/univer"
)

// ResolveValue picks the value a cell record is exported with: v, else the
// rendered string m, else "".
func ResolveValue(cd *univer.CellData) univer.CellValue {
	if cd == nil {
		return univer.StringValue("")
	}
	if cd.V.Kind() != univer.Blank {
		return cd.V
	}
	return univer.StringValue(cd.M)
}

// Classify decides the storage type of an exported value:
//
//	""                          -> Blank
//	number, or Number()-parsable -> Number
//	"true"/"false" in any case   -> Bool
//	anything else                -> String, verbatim
//
// Numeric detection follows the script Number() conversion, so " 5 ", "1e10",
// "0x1F" and a whitespace-only string all become numbers. String cells that
// merely look numeric are coerced too. A native bool is Number()-parsable as
// well and is written as 1 or 0; only the strings "true" and "false" produce
// boolean cells.
func Classify(v univer.CellValue) univer.CellValue {
	switch v.Kind() {
	case univer.Blank:
		return univer.CellValue{}
	case univer.Number:
		return v
	case univer.Bool:
		if v.Boolean() {
			return univer.NumberValue(1)
		}
		return univer.NumberValue(0)
	}
	s := v.Str()
	if s == "" {
		return univer.CellValue{}
	}
	if f, ok := ParseNumber(s); ok {
		return univer.NumberValue(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return univer.BoolValue(true)
	case "false":
		return univer.BoolValue(false)
	}
	return v
}

// ParseNumber converts s the way the script Number() function does and
// reports whether the result is not NaN.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isScriptSpace)
	if s == "" {
		return 0, true
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if strings.ContainsRune(digits, '_') {
				return 0, false
			}
			n, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-') {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// isScriptSpace matches the whitespace and line terminators Number() trims.
func isScriptSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xA0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}
