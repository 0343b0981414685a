package parser

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoHeader indicates the selected region has no non-empty header row.
var ErrNoHeader = errors.New("no header row")

// CellOptions configures how raw cells are typed.
type CellOptions struct {
	// RawDates keeps date-formatted numbers as serial numbers.
	RawDates bool
}

// ReadRecords converts region into records. The first row of region holding
// a non-empty cell is the header; blank rows above it are ignored.
// rows must come from GetRows with RawCellValue set so numbers keep full
// precision. Rows with no data inside region are skipped.
func ReadRecords(f *excelize.File, sheetName string, rows [][]string, region models.Region, opts CellOptions) (*models.RecordSet, error) {
	region = clampRegion(rows, region)
	for region.R1 <= region.R2 && blankRow(rows, region.R1, region) {
		region.R1++
	}
	if region.R1 > region.R2 {
		return nil, ErrNoHeader
	}

	typer := newCellTyper(f, sheetName, opts)

	header := make([]string, region.Cols())
	for c := region.C1; c <= region.C2; c++ {
		name, err := typer.headerText(c, region.R1, cellAt(rows, region.R1, c))
		if err != nil {
			return nil, err
		}
		header[c-region.C1] = name
	}

	rs := models.NewRecordSet(NormalizeHeaders(header))

	for r := region.R1 + 1; r <= region.R2; r++ {
		values := make([]models.Value, len(header))
		hasData := false

		for c := region.C1; c <= region.C2; c++ {
			raw := cellAt(rows, r, c)
			if raw == "" {
				continue
			}
			hasData = true

			v, err := typer.value(c, r, raw)
			if err != nil {
				return nil, err
			}
			values[c-region.C1] = v
		}

		if !hasData {
			continue
		}
		if err := rs.Append(values); err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// clampRegion trims region to the rows and columns that actually hold cells.
func clampRegion(rows [][]string, region models.Region) models.Region {
	if region.R2 > len(rows) {
		region.R2 = len(rows)
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if region.C2 > width {
		region.C2 = width
	}
	if region.R2 < region.R1 {
		region.R2 = region.R1
	}
	if region.C2 < region.C1 {
		region.C2 = region.C1
	}
	return region
}

// blankRow reports whether row has no non-blank cell within region.
func blankRow(rows [][]string, row int, region models.Region) bool {
	for c := region.C1; c <= region.C2; c++ {
		if strings.TrimSpace(cellAt(rows, row, c)) != "" {
			return false
		}
	}
	return true
}

// cellTyper resolves the type of individual cells.
type cellTyper struct {
	f          *excelize.File
	sheet      string
	rawDates   bool
	date1904   bool
	dateStyles map[int]bool
}

func newCellTyper(f *excelize.File, sheet string, opts CellOptions) *cellTyper {
	t := &cellTyper{
		f:          f,
		sheet:      sheet,
		rawDates:   opts.RawDates,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		t.date1904 = *props.Date1904
	}
	return t
}

func (t *cellTyper) value(col, row int, raw string) (models.Value, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Value{}, err
	}
	cellType, err := t.f.GetCellType(t.sheet, cell)
	if err != nil {
		return models.Value{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Boolean(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v := parseValue(raw)
		if v.Kind == models.KindText || t.rawDates {
			return v, nil
		}
		isDate, err := t.isDateCell(cell)
		if err != nil {
			return models.Value{}, err
		}
		if isDate {
			return t.dateValue(v), nil
		}
		return v, nil
	default:
		// Shared and inline strings, formula strings, errors and ISO dates.
		return models.Text(raw), nil
	}
}

// headerText renders a header cell the way the sheet displays it, so a
// boolean header reads TRUE and a date header reads as its ISO date.
func (t *cellTyper) headerText(col, row int, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	v, err := t.value(col, row, raw)
	if err != nil {
		return "", err
	}
	switch v.Kind {
	case models.KindBoolean:
		if v.Bool {
			return "TRUE", nil
		}
		return "FALSE", nil
	case models.KindText:
		return v.Text, nil
	}
	return raw, nil
}

func (t *cellTyper) isDateCell(cell string) (bool, error) {
	idx, err := t.f.GetCellStyle(t.sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := t.dateStyles[idx]; ok {
		return isDate, nil
	}

	style, err := t.f.GetStyle(idx)
	if err != nil {
		return false, err
	}
	isDate := isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	t.dateStyles[idx] = isDate
	return isDate, nil
}

// dateValue renders a date serial as ISO-8601 text. Values that cannot be
// converted are returned unchanged.
func (t *cellTyper) dateValue(v models.Value) models.Value {
	serial := v.Float
	if v.Kind == models.KindInteger {
		serial = float64(v.Int)
	}
	tm, err := excelize.ExcelDateToTime(serial, t.date1904)
	if err != nil {
		return v
	}
	tm = tm.Round(time.Second)
	if tm.Hour() == 0 && tm.Minute() == 0 && tm.Second() == 0 {
		return models.Text(tm.Format(time.DateOnly))
	}
	return models.Text(tm.Format("2006-01-02T15:04:05"))
}

// isDateNumFmt reports whether a built-in or custom number format shows a date or time.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode inspects the first section of a format code for date or
// time tokens, ignoring quoted literals, escapes and bracketed modifiers.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote := false

	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				i = len(code)
				continue
			}
			switch strings.ToLower(code[i+1 : i+end]) {
			case "h", "hh", "m", "mm", "s", "ss":
				return true
			}
			i += end
		case ch == ';':
			i = len(code)
		default:
			b.WriteByte(ch)
		}
	}

	return strings.ContainsAny(strings.ToLower(b.String()), "dmyhs")
}

// parseValue attempts to parse a raw cell as a number.
// Returns an integer for whole numbers, a float for decimals, or text.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Integer(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Float(f)
	}
	return models.Text(s)
}
