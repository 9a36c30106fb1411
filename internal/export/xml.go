package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// encodeXML writes a <profiles> tree with one <profile> element per
// record. Every record renders the full union field order; absent values
// become empty elements.
func encodeXML(records []entity.Record, fields []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	root := xml.StartElement{Name: xml.Name{Local: "profiles"}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	for _, rec := range records {
		item := xml.StartElement{Name: xml.Name{Local: "profile"}}
		if err := enc.EncodeToken(item); err != nil {
			return nil, err
		}
		for _, name := range fields {
			text := ""
			if v, ok := rec.Get(name); ok {
				text = coerceString(v)
			}
			el := xml.StartElement{Name: xml.Name{Local: name}}
			if err := enc.EncodeToken(el); err != nil {
				return nil, err
			}
			if err := enc.EncodeToken(xml.CharData(text)); err != nil {
				return nil, err
			}
			if err := enc.EncodeToken(el.End()); err != nil {
				return nil, err
			}
		}
		if err := enc.EncodeToken(item.End()); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush xml: %w", err)
	}
	return buf.Bytes(), nil
}
