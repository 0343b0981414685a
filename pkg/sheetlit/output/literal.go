// Package output renders record sets as JavaScript data literals.
package output

import (
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit/models"
)

// streamAPI encodes scalars. Structure is written by Render itself so that
// keys keep header order.
var streamAPI = jsoniter.Config{EscapeHTML: false}.Froze()

const (
	itemSep  = ", "
	keySep   = ": "
	indent   = "  "
	emptySet = "[]"
)

// Render renders records as an array of objects. Strings are escaped the
// way a strict JSON encoder escapes them, empty cells become null and
// non-finite numbers become null. With pretty set each record is written on
// its own line.
func Render(rs *models.RecordSet, pretty bool) ([]byte, error) {
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("inconsistent record set: %w", err)
	}
	if rs.Len() == 0 {
		return []byte(emptySet), nil
	}

	stream := jsoniter.NewStream(streamAPI, nil, 256)
	stream.WriteRaw("[")
	for i, rec := range rs.Records {
		switch {
		case pretty && i == 0:
			stream.WriteRaw("\n" + indent)
		case pretty:
			stream.WriteRaw(",\n" + indent)
		case i > 0:
			stream.WriteRaw(itemSep)
		}
		writeRecord(stream, rec)
	}
	if pretty {
		stream.WriteRaw("\n")
	}
	stream.WriteRaw("]")

	if stream.Error != nil {
		return nil, stream.Error
	}
	return stream.Buffer(), nil
}

func writeRecord(stream *jsoniter.Stream, rec models.Record) {
	stream.WriteRaw("{")
	for i, f := range rec.Fields {
		if i > 0 {
			stream.WriteRaw(itemSep)
		}
		stream.WriteString(f.Key)
		stream.WriteRaw(keySep)
		writeValue(stream, f.Value)
	}
	stream.WriteRaw("}")
}

func writeValue(stream *jsoniter.Stream, v models.Value) {
	switch v.Kind {
	case models.KindText:
		stream.WriteString(v.Text)
	case models.KindInteger:
		stream.WriteInt64(v.Int)
	case models.KindFloat:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			stream.WriteNil()
			return
		}
		stream.WriteFloat64(v.Float)
	case models.KindBoolean:
		stream.WriteBool(v.Bool)
	default:
		stream.WriteNil()
	}
}
