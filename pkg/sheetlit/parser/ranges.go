package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
	"github.com/xuri/excelize/v2"
)

// printAreaName is the reserved defined name excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// ParseRange parses a reference such as A1:D10, $A$1:$D$10 or
// 'My Sheet'!A1:D10. The sheet part is returned when present.
func ParseRange(ref string) (string, models.Region, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")

	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	ref = strings.ReplaceAll(ref, "$", "")
	start, end, found := strings.Cut(ref, ":")
	if !found {
		end = start
	}

	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return "", models.Region{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return "", models.Region{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	region := models.Region{R1: r1, C1: c1, R2: r2, C2: c2}.Normalize()
	return sheet, region, nil
}

// FormatRange renders region in A1:D10 notation.
func FormatRange(region models.Region) string {
	start, err := excelize.CoordinatesToCellName(region.C1, region.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(region.C2, region.R2)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// PrintArea returns the first print area defined for sheet.
func PrintArea(f *excelize.File, sheet string) (models.Region, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}

		// Multiple areas are comma separated; the first one wins.
		for _, part := range strings.Split(dn.RefersTo, ",") {
			refSheet, region, err := ParseRange(part)
			if err != nil {
				continue
			}
			if refSheet == "" {
				refSheet = dn.Scope
			}
			if refSheet == sheet {
				return region, true
			}
		}
	}
	return models.Region{}, false
}
