package sheetlit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads one sheet of an xlsx file into a record set. The first
// non-empty row of the selected region is the header.
func Load(path string, opts Options) (*models.RecordSet, error) {
	logger := opts.logger()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConversionError(StageLoad, path, ErrFileNotFound, nil)
		}
		return nil, NewConversionError(StageLoad, path, nil, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConversionError(StageLoad, path, ErrInvalidFormat, err)
	}
	defer f.Close()

	sheetName, err := selectSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewConversionError(StageLoad, path, ErrSheetNotFound, err)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewConversionError(StageLoad, path, ErrInvalidFormat, err)
	}

	region, ok, err := selectRegion(f, sheetName, rows, opts)
	if err != nil {
		return nil, NewConversionError(StageLoad, path, ErrInvalidRange, err)
	}
	if !ok {
		return nil, NewConversionError(StageLoad, path, ErrEmptySheet, nil)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("Selected region",
			slog.String("sheet", sheetName),
			slog.String("range", parser.FormatRange(region)),
			slog.Float64("density", parser.Density(rows, region)),
		)
	}

	rs, err := parser.ReadRecords(f, sheetName, rows, region, parser.CellOptions{RawDates: opts.RawDates})
	if err != nil {
		if errors.Is(err, parser.ErrNoHeader) {
			return nil, NewConversionError(StageLoad, path, ErrEmptySheet, nil)
		}
		return nil, NewConversionError(StageLoad, path, ErrInvalidFormat, err)
	}

	logger.Info("Loaded sheet",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("columns", len(rs.Columns)),
		slog.Int("records", rs.Len()),
	)
	return rs, nil
}

// selectSheet returns name if set, otherwise the first sheet.
func selectSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", errors.New("workbook has no sheets")
		}
		return sheets[0], nil
	}
	if !slices.Contains(sheets, name) {
		return "", errors.New(name)
	}
	return name, nil
}

// selectRegion picks the cells to convert: an explicit range, the print
// area, or the bounding box of non-empty cells. It reports false when the
// sheet has no data to convert.
func selectRegion(f *excelize.File, sheetName string, rows [][]string, opts Options) (models.Region, bool, error) {
	if opts.Range != "" {
		refSheet, region, err := parser.ParseRange(opts.Range)
		if err != nil {
			return models.Region{}, false, err
		}
		if refSheet != "" && refSheet != sheetName {
			return models.Region{}, false, fmt.Errorf("range %q does not refer to sheet %q", opts.Range, sheetName)
		}
		return region, true, nil
	}

	if opts.UsePrintArea {
		if region, ok := parser.PrintArea(f, sheetName); ok {
			return region, true, nil
		}
	}

	region, ok := parser.DataBounds(rows)
	return region, ok, nil
}
