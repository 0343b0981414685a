package models

import "fmt"

// Field is one column of a record.
type Field struct {
	Key   string
	Value Value
}

// Record represents one sheet row as an ordered column-to-value mapping.
type Record struct {
	Fields []Field
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the record's keys in column order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// RecordSet is the ordered collection of records read from one sheet.
// Every record carries exactly Columns, in the same order.
type RecordSet struct {
	// Columns holds the normalized header row.
	Columns []string
	// Records holds data rows in sheet order.
	Records []Record
}

// NewRecordSet creates an empty record set for the given header.
func NewRecordSet(columns []string) *RecordSet {
	return &RecordSet{Columns: columns}
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// Append adds a row. values must hold one entry per column.
func (rs *RecordSet) Append(values []Value) error {
	if len(values) != len(rs.Columns) {
		return fmt.Errorf("row has %d values, header has %d columns", len(values), len(rs.Columns))
	}
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Key: rs.Columns[i], Value: v}
	}
	rs.Records = append(rs.Records, Record{Fields: fields})
	return nil
}

// Validate checks that every record has exactly the header's keys in order.
func (rs *RecordSet) Validate() error {
	for i, rec := range rs.Records {
		if len(rec.Fields) != len(rs.Columns) {
			return fmt.Errorf("record %d has %d fields, want %d", i, len(rec.Fields), len(rs.Columns))
		}
		for j, f := range rec.Fields {
			if f.Key != rs.Columns[j] {
				return fmt.Errorf("record %d field %d is %q, want %q", i, j, f.Key, rs.Columns[j])
			}
		}
	}
	return nil
}
