package sheetlit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptySheet indicates the sheet has no header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a malformed cell range.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidDeclaration indicates an unusable variable keyword or name.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// ErrWrite indicates the output file could not be written.
var ErrWrite = errors.New("write failed")

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageLoad   Stage = "load"
	StageRender Stage = "render"
	StageWrite  Stage = "write"
)

// ConversionError represents an error during conversion.
type ConversionError struct {
	Stage Stage
	Path  string
	// Kind is one of the Err* sentinels, or nil when the cause is unclassified.
	Kind error
	Err  error
}

func (e *ConversionError) Error() string {
	switch {
	case e.Kind == nil:
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Stage, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage Stage, path string, kind, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Path:  path,
		Kind:  kind,
		Err:   err,
	}
}
