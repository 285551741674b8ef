package univer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant a CellValue holds.
type Kind int

const (
	// Blank is the zero Kind: the value is absent (null in JSON).
	Blank Kind = iota
	Number
	String
	Bool
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CellValue is the primitive stored in a cell record's "v" field. The zero
// value is Blank.
type CellValue struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

func NumberValue(f float64) CellValue { return CellValue{kind: Number, num: f} }
func StringValue(s string) CellValue  { return CellValue{kind: String, str: s} }
func BoolValue(b bool) CellValue      { return CellValue{kind: Bool, b: b} }

func (v CellValue) Kind() Kind { return v.kind }

// IsZero reports whether v is Blank. It makes `omitzero` drop absent values.
func (v CellValue) IsZero() bool { return v.kind == Blank }

// Float returns the numeric payload; it is 0 unless Kind is Number.
func (v CellValue) Float() float64 { return v.num }

// Str returns the string payload; it is "" unless Kind is String.
func (v CellValue) Str() string { return v.str }

// Boolean returns the bool payload; it is false unless Kind is Bool.
func (v CellValue) Boolean() bool { return v.b }

// String renders v the way a script runtime would stringify it: numbers in
// shortest form, booleans as true/false and Blank as "".
func (v CellValue) String() string {
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case String:
		return v.str
	case Bool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Number:
		return json.Marshal(v.num)
	case String:
		return json.Marshal(v.str)
	case Bool:
		return json.Marshal(v.b)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null, numbers, strings and bools. Objects and arrays
// (rich values this package does not model) decode as Blank so one such cell
// does not fail the whole document.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = CellValue{}
		return nil
	}
	switch data[0] {
	case '{', '[':
		*v = CellValue{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("cell value %s: %w", data, err)
		}
		*v = NumberValue(f)
	}
	return nil
}
