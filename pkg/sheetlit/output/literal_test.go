package output

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
)

func newRecordSet(t *testing.T, columns []string, rows ...[]models.Value) *models.RecordSet {
	t.Helper()
	rs := models.NewRecordSet(columns)
	for _, row := range rows {
		require.NoError(t, rs.Append(row))
	}
	return rs
}

func TestRenderScenario(t *testing.T) {
	rs := newRecordSet(t, []string{"name", "score"},
		[]models.Value{models.Text("Ana"), models.Integer(10)},
		[]models.Value{models.Text("Bo"), models.Integer(7)},
	)

	body, err := Render(rs, false)
	require.NoError(t, err)
	assert.Equal(t, `[{"name": "Ana", "score": 10}, {"name": "Bo", "score": 7}]`, string(body))
}

func TestRenderEmpty(t *testing.T) {
	body, err := Render(models.NewRecordSet([]string{"name"}), false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	body, err = Render(models.NewRecordSet([]string{"name"}), true)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestRenderPretty(t *testing.T) {
	rs := newRecordSet(t, []string{"a"},
		[]models.Value{models.Integer(1)},
		[]models.Value{models.Empty()},
	)

	body, err := Render(rs, true)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\"a\": 1},\n  {\"a\": null}\n]", string(body))
}

func TestRenderScalars(t *testing.T) {
	tests := []struct {
		name     string
		value    models.Value
		expected string
	}{
		{"empty", models.Empty(), `null`},
		{"bool", models.Boolean(false), `false`},
		{"negative int", models.Integer(-42), `-42`},
		{"float", models.Float(0.25), `0.25`},
		{"whole float", models.Float(3), `3`},
		{"nan", models.Float(math.NaN()), `null`},
		{"inf", models.Float(math.Inf(-1)), `null`},
		{"quotes", models.Text(`say "hi"`), `"say \"hi\""`},
		{"backslash", models.Text(`C:\tmp`), `"C:\\tmp"`},
		{"newline", models.Text("a\nb\tc"), `"a\nb\tc"`},
		{"control", models.Text("\x01"), `"\u0001"`},
		{"html", models.Text("<b>&</b>"), `"<b>&</b>"`},
		{"unicode", models.Text("José ✓"), `"José ✓"`},
		{"single quote", models.Text("it's"), `"it's"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRecordSet(t, []string{"v"}, []models.Value{tt.value})
			body, err := Render(rs, false)
			require.NoError(t, err)
			assert.Equal(t, `[{"v": `+tt.expected+`}]`, string(body))
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	rs := newRecordSet(t, []string{"text", "int", "float", "bool", "empty", `we"ird\key`},
		[]models.Value{models.Text("line\n\"two\""), models.Integer(9007199254740993), models.Float(-1.5e-7), models.Boolean(true), models.Empty(), models.Text("")},
		[]models.Value{models.Text("ü"), models.Integer(0), models.Float(123456.789), models.Boolean(false), models.Empty(), models.Float(1e21)},
	)

	body, err := Render(rs, false)
	require.NoError(t, err)

	api := jsoniter.Config{UseNumber: true}.Froze()
	var decoded []map[string]interface{}
	require.NoError(t, api.Unmarshal(body, &decoded))
	require.Len(t, decoded, rs.Len())

	for i, rec := range rs.Records {
		require.Len(t, decoded[i], len(rec.Fields))
		for _, f := range rec.Fields {
			got, ok := decoded[i][f.Key]
			require.True(t, ok, f.Key)
			assertSameValue(t, f.Value, got)
		}
	}
}

func assertSameValue(t *testing.T, want models.Value, got interface{}) {
	t.Helper()
	switch want.Kind {
	case models.KindInteger:
		n, ok := got.(json.Number)
		require.True(t, ok, "%T", got)
		i, err := n.Int64()
		require.NoError(t, err)
		assert.Equal(t, want.Int, i)
	case models.KindFloat:
		n, ok := got.(json.Number)
		require.True(t, ok, "%T", got)
		f, err := n.Float64()
		require.NoError(t, err)
		assert.Equal(t, want.Float, f)
	default:
		assert.Equal(t, want.Interface(), got)
	}
}

func TestRenderRejectsInconsistentRecords(t *testing.T) {
	rs := models.NewRecordSet([]string{"a", "b"})
	rs.Records = append(rs.Records, models.Record{Fields: []models.Field{{Key: "a"}}})

	_, err := Render(rs, false)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.js")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0644))

	require.NoError(t, WriteFile(path, "const data = ", []byte("[]"), ";"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const data = [];", string(got))
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.js")
	assert.Error(t, WriteFile(path, "const data = ", []byte("[]"), ";"))
}
