// Package main provides the CLI entry point for sheetlit.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetlit-go/internal/config"
	"github.com/ukaji3/sheetlit-go/internal/logger"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sheetlit [input.xlsx] [output.js]",
		Short: "Convert a spreadsheet into a JavaScript data literal",
		Long: `sheetlit reads the first sheet of an Excel workbook, turns every row into
an object keyed by the header row, and writes the rows as

    const data = [...];

for use by front-end code.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if len(args) > 1 {
				cfg.Output = args[1]
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./sheetlit.yaml if present)")
	flags.StringP("input", "i", config.DefaultInput, "Spreadsheet to read")
	flags.StringP("output", "o", config.DefaultOutput, "File to write the literal to")
	flags.String("sheet", "", "Sheet to read (default: first sheet)")
	flags.String("range", "", "Cell range to convert, e.g. A1:D20; its first non-empty row is the header")
	flags.Bool("print-area", false, "Convert the sheet's print area when one is defined")
	flags.Bool("raw-dates", false, "Keep date cells as Excel serial numbers")
	flags.String("keyword", sheetlit.DefaultKeyword, "Declaration keyword: const, let or var")
	flags.String("var-name", sheetlit.DefaultVarName, "Variable name to assign")
	flags.Bool("pretty", false, "Write one record per line")
	flags.BoolP("verbose", "v", false, "Verbose logging")
	flags.String("log-file", "", "Also write JSON logs to this file")

	return rootCmd
}

func run(stdout io.Writer, cfg *config.Config) error {
	settings := logger.Settings{Verbose: cfg.Verbose}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		settings.File = f
	}
	log := logger.NewLogger(settings)

	if cfg.FileUsed != "" {
		log.Debug("Using config file", slog.String("path", cfg.FileUsed))
	}

	opts := sheetlit.ConvertOptions{
		Options: sheetlit.Options{
			Sheet:        cfg.Sheet,
			Range:        cfg.Range,
			UsePrintArea: cfg.PrintArea,
			RawDates:     cfg.RawDates,
			Logger:       log,
		},
		Declaration: sheetlit.Declaration{Keyword: cfg.Keyword, Name: cfg.VarName},
		Pretty:      cfg.Pretty,
	}

	if _, err := sheetlit.Convert(cfg.Input, cfg.Output, opts); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Data saved to '%s'\n", cfg.Output)
	return nil
}
