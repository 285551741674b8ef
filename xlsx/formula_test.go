package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftFormula(t *testing.T) {
	cases := []struct {
		in     string
		dr, dc int
		want   string
	}{
		{"A1+B1", 1, 0, "A2+B2"},
		{"SUM(A1:A2)", 2, 1, "SUM(B3:B4)"},
		{"$A1+A$1+$A$1", 1, 1, "$A2+B$1+$A$1"},
		{`IF(A1="B2",C3,"x")`, 1, 0, `IF(A2="B2",C4,"x")`},
		{"'My B1'!A1*2", 0, 1, "'My B1'!B1*2"},
		{"Sheet2!C3", 1, 1, "Sheet2!D4"},
		{"LOG10(A1)", 3, 0, "LOG10(A4)"},
		{"Z1+1", 0, 1, "AA1+1"},
		{"A1", -1, 0, "#REF!"},
		{"A1", 0, 0, "A1"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShiftFormula(tc.in, tc.dr, tc.dc), tc.in)
	}
}
