// Package parser reads typed records out of excelize worksheets.
package parser

import (
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
)

// DataBounds finds the bounding box of non-empty cells.
// It reports false when every cell is empty.
func DataBounds(rows [][]string) (models.Region, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.Region{}, false
	}
	return models.Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// Density returns the share of non-empty cells within region.
func Density(rows [][]string, region models.Region) float64 {
	total := region.Rows() * region.Cols()
	if total <= 0 {
		return 0
	}
	return float64(countNonEmptyCells(rows, region)) / float64(total)
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, region models.Region) int {
	count := 0
	for r := region.R1; r <= region.R2; r++ {
		for c := region.C1; c <= region.C2; c++ {
			if cellAt(rows, r, c) != "" {
				count++
			}
		}
	}
	return count
}

// cellAt returns the raw cell at 1-based coordinates, or "" when outside rows.
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}
