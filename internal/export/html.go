package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// The page shell is fixed; only headers and cell text vary. html/template
// escapes every interpolated value, so hostile field content cannot
// inject markup.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8"/>
  <title>WhatsApp Profiles Export</title>
  <style>
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ddd; padding: 8px; font-family: Arial, sans-serif; font-size: 14px; }
    th { background-color: #f5f5f5; text-align: left; }
    tr:nth-child(even) { background-color: #fafafa; }
  </style>
</head>
<body>
  <h1>WhatsApp Profiles Export</h1>
  <table>
    <thead>
      <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
    </tbody>
  </table>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("profiles").Parse(htmlPage))

// encodeHTML renders the batch as a minimal styled table.
func encodeHTML(records []entity.Record, fields []string) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(fields))
		for i, name := range fields {
			if v, ok := rec.Get(name); ok {
				row[i] = coerceString(v)
			}
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, struct {
		Headers []string
		Rows    [][]string
	}{Headers: fields, Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
