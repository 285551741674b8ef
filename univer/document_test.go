package univer

import (
	"encoding/json"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellValueJSON(t *testing.T) {
	cases := []struct {
		in   CellValue
		want string
	}{
		{CellValue{}, `null`},
		{NumberValue(42), `42`},
		{NumberValue(3.5), `3.5`},
		{StringValue("=SUM(A1:A2)"), `"=SUM(A1:A2)"`},
		{BoolValue(true), `true`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(b))

		var back CellValue
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, tc.in, back)
	}
}

func TestCellValueRichDecodesBlank(t *testing.T) {
	for _, in := range []string{`{"rich":1}`, `[1,2]`, ` {"p":{"body":"x"}} `} {
		v := NumberValue(5)
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, Blank, v.Kind(), in)
	}

	var wb WorkbookData
	doc := `{"id":"b","sheets":{"s":{"id":"s","cellData":{"0":{"0":{"v":{"rich":1},"m":"shown"},"1":{"v":"ok"}}}}}}`
	require.NoError(t, json.Unmarshal([]byte(doc), &wb))
	cells := wb.Sheets["s"].CellData
	assert.True(t, cells.Get(0, 0).V.IsZero())
	assert.Equal(t, "shown", cells.Get(0, 0).M)
	assert.Equal(t, StringValue("ok"), cells.Get(0, 1).V)
}

func TestCellValueString(t *testing.T) {
	assert.Equal(t, "42", NumberValue(42).String())
	assert.Equal(t, "0.25", NumberValue(0.25).String())
	assert.Equal(t, "false", BoolValue(false).String())
	assert.Equal(t, "", CellValue{}.String())
}

func TestCellDataOmitsBlankValue(t *testing.T) {
	b, err := json.Marshal(CellData{F: "=A1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"=A1"}`, string(b))

	b, err = json.Marshal(CellData{V: StringValue("")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":""}`, string(b))
}

func TestCellDataJSONIterator(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	m := CellMatrix{}
	m.Set(0, 0, &CellData{F: "=B1", S: "s1"})
	m.Set(0, 1, &CellData{V: NumberValue(2)})

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"0":{"0":{"f":"=B1","s":"s1"},"1":{"v":2}}}`, string(b))

	var back CellMatrix
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, m, back)
}

func TestCellMatrixKeys(t *testing.T) {
	m := CellMatrix{}
	m.Set(10, 2, &CellData{V: NumberValue(1)})
	m.Set(9, 0, &CellData{V: StringValue("x")})
	m.Set(10, 0, &CellData{V: BoolValue(true)})

	assert.Equal(t, []int{9, 10}, m.Rows())
	assert.Equal(t, []int{0, 2}, m.Columns(10))
	assert.Equal(t, 3, m.Len())
	assert.Nil(t, m.Get(1, 1))

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"9":{"0":{"v":"x"}},"10":{"0":{"v":true},"2":{"v":1}}}`, string(b))

	var back CellMatrix
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, m, back)
}

func TestOrderedSheets(t *testing.T) {
	wb := WorkbookData{
		SheetOrder: []string{"b", "missing", "a"},
		Sheets: map[string]*WorksheetData{
			"a": {ID: "a"},
			"b": {ID: "b"},
			"d": {ID: "d"},
			"c": {ID: "c"},
		},
	}
	var ids []string
	for _, ws := range wb.OrderedSheets() {
		ids = append(ids, ws.ID)
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids)
}
