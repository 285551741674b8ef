// Command sheetconv converts xlsx files to Univer workbook JSON and back.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aerissecure/sheetconv"
	"github.com/aerissecure/sheetconv/internal/config"
	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	configPath string
	logLevel   string
	styles     bool
	timing     bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "sheetconv",
	Short:         "Convert between xlsx files and Univer workbook JSON",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("styles") {
			cfg.ExtractStyles = styles
		}
		if flags.Changed("timing") {
			cfg.Timing = timing
		}
		lvl, err := cfg.Level()
		if err != nil {
			return err
		}
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(lvl)
		zc.OutputPaths = []string{"stderr"}
		logger, err = zc.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func converter() *sheetconv.Converter {
	return sheetconv.New(sheetconv.Options{
		ExtractStyles: cfg.ExtractStyles,
		Timing:        cfg.Timing,
		Logger:        logger,
	})
}

var importCmd = &cobra.Command{
	Use:   "import FILE.xlsx",
	Short: "Convert an xlsx file to Univer workbook JSON",
	Long: `Convert an xlsx file to Univer workbook JSON.

By default the merge ranges are decoded into each sheet's mergeData. With
--raw the document is written as imported, next to the still encoded merges:

  {"workbook": {...}, "merges": {"Sheet1": ["A1:B2"]}}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := converter().ImportFile(args[0])
		if err != nil {
			return err
		}
		var v any = res
		if !raw {
			if err := sheetconv.ApplyMerges(&res.Workbook, res.Merges); err != nil {
				return err
			}
			v = res.Workbook
		}
		var data []byte
		if cfg.Pretty {
			data, err = json.MarshalIndent(v, "", "  ")
		} else {
			data, err = json.Marshal(v)
		}
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		return writeOutput(cmd, importOut, append(data, '\n'))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export DOC.json",
	Short: "Convert Univer workbook JSON to an xlsx file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var doc univer.WorkbookData
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		dir := cfg.OutputDir
		if exportDir != "" {
			dir = exportDir
		}
		path, err := converter().ExportFile(dir, doc)
		if err != nil {
			return err
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d sheets)\n", path, humanize.Bytes(uint64(info.Size())), len(doc.Sheets))
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview FILE.xlsx",
	Short: "Render the sheets of an xlsx file as HTML tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		sheets, err := xlsx.ReadSheets(bytes.NewReader(data), int64(len(data)), xlsx.ReadOptions{
			ExtractStyles: true,
			Logger:        logger,
		})
		if err != nil {
			return err
		}
		logger.Debug("previewing", zap.String("file", args[0]), zap.String("size", humanize.Bytes(uint64(len(data)))), zap.Int("sheets", len(sheets)))
		return writeOutput(cmd, previewOut, []byte(xlsx.RenderSheetsHTML(sheets)))
	},
}

var (
	raw        bool
	importOut  string
	exportDir  string
	previewOut string
)

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" && path != "-" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if path != "" && path != "-" {
		logger.Info("wrote file", zap.String("path", path), zap.String("size", humanize.Bytes(uint64(len(data)))))
	}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML settings file")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	pf.BoolVar(&styles, "styles", false, "Extract cell styles into the document")
	pf.BoolVar(&timing, "timing", false, "Log the duration of each conversion stage")

	importCmd.Flags().StringVarP(&importOut, "output", "o", "", "Output file (default stdout)")
	importCmd.Flags().BoolVar(&raw, "raw", false, "Keep merges encoded and emit {workbook, merges}")
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Output directory (default output_dir from config)")
	previewCmd.Flags().StringVarP(&previewOut, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(importCmd, exportCmd, previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sheetconv:", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
