package xlsx

import (
	"math"
	"testing"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   univer.CellValue
		want univer.CellValue
	}{
		{"empty string is blank", univer.StringValue(""), univer.CellValue{}},
		{"null is blank", univer.CellValue{}, univer.CellValue{}},
		{"numeric string", univer.StringValue("42"), univer.NumberValue(42)},
		{"decimal string", univer.StringValue("-3.25"), univer.NumberValue(-3.25)},
		{"native number", univer.NumberValue(7), univer.NumberValue(7)},
		{"upper TRUE", univer.StringValue("TRUE"), univer.BoolValue(true)},
		{"mixed False", univer.StringValue("False"), univer.BoolValue(false)},
		{"native true", univer.BoolValue(true), univer.NumberValue(1)},
		{"native false", univer.BoolValue(false), univer.NumberValue(0)},
		{"text", univer.StringValue("hello"), univer.StringValue("hello")},
		{"yes is text", univer.StringValue("yes"), univer.StringValue("yes")},
		{"exponent", univer.StringValue("1e10"), univer.NumberValue(1e10)},
		{"padded", univer.StringValue(" 5 "), univer.NumberValue(5)},
		{"hex", univer.StringValue("0x1F"), univer.NumberValue(31)},
		{"whitespace only", univer.StringValue("   "), univer.NumberValue(0)},
		{"date text", univer.StringValue("2024-01-02"), univer.StringValue("2024-01-02")},
		{"lowercase infinity", univer.StringValue("inf"), univer.StringValue("inf")},
		{"nan", univer.StringValue("NaN"), univer.StringValue("NaN")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestParseNumberScriptEdges(t *testing.T) {
	f, ok := ParseNumber("Infinity")
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	f, ok = ParseNumber(".5")
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	f, ok = ParseNumber("5.")
	assert.True(t, ok)
	assert.Equal(t, 5.0, f)

	f, ok = ParseNumber("0b101")
	assert.True(t, ok)
	assert.Equal(t, 5.0, f)

	for _, s := range []string{"1_000", "0x1p-2", "-0x10", "1,5", "12abc", "--1"} {
		_, ok := ParseNumber(s)
		assert.False(t, ok, s)
	}
}

func TestResolveValue(t *testing.T) {
	assert.Equal(t, univer.NumberValue(1), ResolveValue(&univer.CellData{V: univer.NumberValue(1), M: "one"}))
	assert.Equal(t, univer.StringValue("shown"), ResolveValue(&univer.CellData{M: "shown"}))
	assert.Equal(t, univer.StringValue(""), ResolveValue(&univer.CellData{F: "=A1"}))
	assert.Equal(t, univer.StringValue(""), ResolveValue(nil))
}
