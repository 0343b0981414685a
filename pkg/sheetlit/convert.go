package sheetlit

import (
	"log/slog"

	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/output"
)

// ConvertOptions configures a full conversion run.
type ConvertOptions struct {
	Options
	// Declaration wraps the literal. The zero value means DefaultDeclaration.
	Declaration Declaration
	// Pretty writes one record per line.
	Pretty bool
}

// Convert loads input, renders it and writes the declaration to outputPath.
// Input errors are reported before outputPath is touched.
func Convert(inputPath, outputPath string, opts ConvertOptions) (*models.RecordSet, error) {
	decl := opts.Declaration
	if decl == (Declaration{}) {
		decl = DefaultDeclaration()
	}
	if err := decl.Validate(); err != nil {
		return nil, err
	}

	rs, err := Load(inputPath, opts.Options)
	if err != nil {
		return nil, err
	}

	body, err := output.Render(rs, opts.Pretty)
	if err != nil {
		return nil, NewConversionError(StageRender, inputPath, nil, err)
	}

	if err := output.WriteFile(outputPath, decl.Prefix(), body, decl.Suffix()); err != nil {
		return nil, NewConversionError(StageWrite, outputPath, ErrWrite, err)
	}

	opts.logger().Info("Wrote literal",
		slog.String("path", outputPath),
		slog.Int("bytes", len(decl.Prefix())+len(body)+len(decl.Suffix())),
	)
	return rs, nil
}
