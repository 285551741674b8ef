package xlsx

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet/reference"
)

var cellTokenRe = regexp.MustCompile(`^(\$?)([A-Za-z]{1,3})(\$?)([0-9]+)`)

// ShiftFormula moves every relative A1 reference in formula by dr rows and dc
// columns. Absolute parts ($A, $1), string literals and quoted sheet names are
// left alone. References that would leave the sheet become #REF!.
// Whole-row and whole-column references (A:A, 1:1) are not shifted.
func ShiftFormula(formula string, dr, dc int) string {
	if dr == 0 && dc == 0 {
		return formula
	}
	var b strings.Builder
	b.Grow(len(formula))
	for i := 0; i < len(formula); {
		ch := formula[i]
		if ch == '"' || ch == '\'' {
			end := closingQuote(formula, i)
			b.WriteString(formula[i:end])
			i = end
			continue
		}
		if i > 0 && isRefPrefixBlocker(formula[i-1]) {
			b.WriteByte(ch)
			i++
			continue
		}
		m := cellTokenRe.FindStringSubmatchIndex(formula[i:])
		if m == nil || !refEndsAt(formula, i+m[1]) {
			b.WriteByte(ch)
			i++
			continue
		}
		absCol := formula[i+m[2]:i+m[3]] == "$"
		col := formula[i+m[4] : i+m[5]]
		absRow := formula[i+m[6]:i+m[7]] == "$"
		row, _ := strconv.Atoi(formula[i+m[8] : i+m[9]])

		colIdx := int(reference.ColumnToIndex(strings.ToUpper(col)))
		if !absCol {
			colIdx += dc
		}
		if !absRow {
			row += dr
		}
		if colIdx < 0 || row < 1 {
			b.WriteString("#REF!")
		} else {
			if absCol {
				b.WriteByte('$')
			}
			b.WriteString(reference.IndexToColumn(uint32(colIdx)))
			if absRow {
				b.WriteByte('$')
			}
			b.WriteString(strconv.Itoa(row))
		}
		i += m[1]
	}
	return b.String()
}

// closingQuote returns the index just past the literal starting at i. Doubled
// quotes inside the literal are escapes.
func closingQuote(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		if s[j] != q {
			continue
		}
		if j+1 < len(s) && s[j+1] == q {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

func isRefPrefixBlocker(c byte) bool {
	return isIdentByte(c) || c == '.' || c == '$'
}

// refEndsAt reports whether a reference ending at end is a whole token and
// not the start of a function call or a longer name.
func refEndsAt(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	c := s[end]
	return !isIdentByte(c) && c != '(' && c != '.' && c != '!'
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
