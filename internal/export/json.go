package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// encodeJSON serializes records as an indented array of objects. Each
// record's own field order is preserved, and non-ASCII or HTML-sensitive
// characters pass through unescaped.
func encodeJSON(records []entity.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, f := range rec {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return nil, fmt.Errorf("marshal key %q: %w", f.Key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := marshalValue(f.Value)
			if err != nil {
				return nil, fmt.Errorf("marshal value of %q: %w", f.Key, err)
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	return out.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
