// Package sheetconv converts between xlsx files and Univer workbook
// documents.
//
// Import reads a file into intermediate sheets, flattens them into an
// internal workbook and assembles the Univer document. Export writes a
// Univer document back to an xlsx file.
package sheetconv

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures a Converter. The zero value imports values, formulas
// and merges without styles and logs nothing.
type Options struct {
	ExtractStyles bool // resolve cell styles into the document's styles map
	Timing        bool // log the duration of each stage
	Logger        *zap.Logger
}

// Converter runs imports and exports. It holds no per-call state and is safe
// for concurrent use.
type Converter struct {
	opts Options
	log  *zap.Logger
}

// New returns a Converter for opts. A nil Logger discards all output.
func New(opts Options) *Converter {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{opts: opts, log: log}
}

// ImportResult is the assembled document plus the merge ranges of each sheet,
// still encoded. Pass them to ApplyMerges to fill in mergeData.
type ImportResult struct {
	Workbook univer.WorkbookData `json:"workbook"`
	Merges   map[string][]string `json:"merges"`
}

// Import converts the xlsx in r into a Univer document named name.
func (c *Converter) Import(name string, r io.ReaderAt, size int64) (ImportResult, error) {
	start := time.Now()
	sheets, err := xlsx.ReadSheets(r, size, xlsx.ReadOptions{ExtractStyles: c.opts.ExtractStyles, Logger: c.log})
	if err != nil {
		return ImportResult{}, err
	}
	c.timing("read sheets", start)

	start = time.Now()
	internal := ToInternal(name, sheets)
	c.timing("map sheets", start)

	start = time.Now()
	doc, merges := ToUniver(internal)
	c.timing("assemble document", start)

	c.log.Debug("imported workbook", zap.String("name", name), zap.Int("sheets", len(doc.Sheets)), zap.Int("styles", len(doc.Styles)))
	return ImportResult{Workbook: doc, Merges: merges}, nil
}

// ImportFile reads path and imports it. The workbook is named after the file
// without its extension.
func (c *Converter) ImportFile(path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return c.Import(name, bytes.NewReader(data), int64(len(data)))
}

// Export writes doc to w as an xlsx file.
func (c *Converter) Export(w io.Writer, doc univer.WorkbookData) error {
	start := time.Now()
	defer c.timing("write workbook", start)
	return xlsx.Write(w, doc, xlsx.WriteOptions{Logger: c.log})
}

// ExportFile writes doc into dir under ExportFilename(doc.Name) and returns
// the path of the new file.
func (c *Converter) ExportFile(dir string, doc univer.WorkbookData) (string, error) {
	path := filepath.Join(dir, ExportFilename(doc.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.Export(f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// ExportFilename derives the file name for an exported workbook: the
// workbook name, or a random UUID when it is empty, with ".xlsx" appended
// unless it already ends that way. Path separators are replaced by "_".
func ExportFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = uuid.NewString()
	}
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		name += ".xlsx"
	}
	return name
}

func (c *Converter) timing(stage string, start time.Time) {
	if c.opts.Timing {
		c.log.Info("timing", zap.String("stage", stage), zap.Duration("took", time.Since(start)))
	}
}

// XlsxToUniver imports data with default options.
func XlsxToUniver(name string, data []byte) (ImportResult, error) {
	return New(Options{}).Import(name, bytes.NewReader(data), int64(len(data)))
}

// UniverToXlsx exports doc to w with default options.
func UniverToXlsx(w io.Writer, doc univer.WorkbookData) error {
	return New(Options{}).Export(w, doc)
}
