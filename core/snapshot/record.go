package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one source row keyed by header. A nil value is an empty or missing cell.
// Header order is preserved through JSON encoding.
type Record struct {
	headers []string
	values  map[string]*string
}

// NewRecord zips a row against headers. Cells past the end of the row and empty
// strings both become null.
func NewRecord(headers []string, row []string) Record {
	r := Record{headers: make([]string, 0, len(headers)), values: make(map[string]*string, len(headers))}
	for i, h := range headers {
		var v *string
		if i < len(row) && row[i] != "" {
			cell := row[i]
			v = &cell
		}
		r.set(h, v)
	}
	return r
}

func (r *Record) set(header string, v *string) {
	if r.values == nil {
		r.values = make(map[string]*string)
	}
	if _, seen := r.values[header]; !seen {
		r.headers = append(r.headers, header)
	}
	r.values[header] = v
}

// Get returns the cell under header; ok is false when the column is absent.
func (r Record) Get(header string) (value *string, ok bool) {
	value, ok = r.values[header]
	return value, ok
}

// Headers returns the column names in source order.
func (r Record) Headers() []string {
	return append([]string(nil), r.headers...)
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.headers)
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, h := range r.headers {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[h])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		header, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", header, err)
		}
		r.set(header, cellValue(raw))
	}
	_, err = dec.Token()
	return err
}

// cellValue accepts hand-edited snapshots where numbers or booleans were written unquoted.
func cellValue(raw any) *string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return &v
	default:
		s := fmt.Sprint(v)
		return &s
	}
}
