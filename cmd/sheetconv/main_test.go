package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestImportExportPreview(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ledger.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "total"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 99))
	require.NoError(t, f.MergeCell("Sheet1", "A3", "B3"))
	require.NoError(t, f.SaveAs(src))
	require.NoError(t, f.Close())

	cfgPath := filepath.Join(dir, "sheetconv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\npretty: false\n"), 0o644))

	docPath := filepath.Join(dir, "out", "ledger.json")
	run(t, "import", src, "-o", docPath, "-c", cfgPath)

	data, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"), "compact output")
	var doc univer.WorkbookData
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "ledger", doc.Name)
	assert.Equal(t, []string{"Sheet1"}, doc.SheetOrder)
	assert.Equal(t, []univer.Range{{StartRow: 2, StartColumn: 0, EndRow: 2, EndColumn: 1}}, doc.Sheets["Sheet1"].MergeData)

	exportDir := filepath.Join(dir, "xlsx")
	require.NoError(t, os.Mkdir(exportDir, 0o755))
	out := run(t, "export", docPath, "-d", exportDir, "-c", cfgPath)
	assert.Contains(t, out, filepath.Join(exportDir, "ledger.xlsx"))
	assert.Contains(t, out, "1 sheets")

	exported, err := excelize.OpenFile(filepath.Join(exportDir, "ledger.xlsx"))
	require.NoError(t, err)
	defer exported.Close()
	v, err := exported.GetCellValue("Sheet1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "99", v)

	html := run(t, "preview", src, "-c", cfgPath)
	assert.Contains(t, html, `data-name="Sheet1"`)
	assert.Contains(t, html, `colspan="2"`)
}

func TestExportRichValueCells(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "rich.json")
	doc := `{"id":"rich","name":"rich","sheetOrder":["s"],"sheets":{"s":{"id":"s","name":"Notes","cellData":{"0":{` +
		`"0":{"v":{"p":{"body":"x"}},"m":"shown"},"1":{"v":[1,2]},"2":{"v":"plain"}}}}}}`
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0o644))

	out := run(t, "export", docPath, "-d", dir, "--config=")
	assert.Contains(t, out, filepath.Join(dir, "rich.xlsx"))

	f, err := excelize.OpenFile(filepath.Join(dir, "rich.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	for ref, want := range map[string]string{"A1": "shown", "B1": "", "C1": "plain"} {
		v, err := f.GetCellValue("Notes", ref)
		require.NoError(t, err)
		assert.Equal(t, want, v, ref)
	}
}
