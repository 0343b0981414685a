package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("output", "o", "", "")
	fs.String("sheet", "", "")
	fs.String("var-name", "", "")
	fs.Bool("pretty", false, "")
	fs.Bool("raw-dates", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, sheetlit.DefaultKeyword, cfg.Keyword)
	assert.Equal(t, sheetlit.DefaultVarName, cfg.VarName)
	assert.False(t, cfg.Pretty)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheetlit.yaml"), []byte(`
input: book.xlsx
output: from-file.js
sheet: FromFile
var_name: fromFile
pretty: true
`), 0644))

	t.Setenv("SHEETLIT_OUTPUT", "from-env.js")
	t.Setenv("SHEETLIT_RAW_DATES", "true")

	cfg, err := Load("", newFlags(t, "--sheet", "FromFlag"))
	require.NoError(t, err)

	assert.Equal(t, "sheetlit.yaml", cfg.FileUsed)
	assert.Equal(t, "book.xlsx", cfg.Input)
	assert.Equal(t, "from-env.js", cfg.Output)
	assert.Equal(t, "FromFlag", cfg.Sheet)
	assert.Equal(t, "fromFile", cfg.VarName)
	assert.True(t, cfg.Pretty, "unset flags must not override the file")
	assert.True(t, cfg.RawDates)

	cfg, err = Load("", newFlags(t, "-o", "flag.js", "--var-name", "rows"))
	require.NoError(t, err)
	assert.Equal(t, "flag.js", cfg.Output)
	assert.Equal(t, "rows", cfg.VarName)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keyword: let\n"), 0644))

	cfg, err := Load(path, newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "let", cfg.Keyword)
	assert.Equal(t, path, cfg.FileUsed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope.yaml", nil)
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheetlit.yml"), []byte("input: [unclosed\n"), 0644))

	_, err := Load("", nil)
	assert.Error(t, err)
}
