package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// raggedRecords has a field appearing only in the second record; every
// tabular encoder must still render it for both rows.
func raggedRecords() []entity.Record {
	return []entity.Record{
		{
			{Key: "number", Value: "123456"},
			{Key: "is_registered", Value: false},
		},
		{
			{Key: "number", Value: "1234567890"},
			{Key: "is_registered", Value: true},
			{Key: "about", Value: "Living my best life!"},
		},
	}
}

func TestFieldOrderFirstSeenWins(t *testing.T) {
	fields := fieldOrder(raggedRecords())
	assert.Equal(t, []string{"number", "is_registered", "about"}, fields)
}

func TestFieldOrderEmptyBatch(t *testing.T) {
	assert.Empty(t, fieldOrder(nil))
}

func TestEncodeJSONPreservesFieldOrderAndLiterals(t *testing.T) {
	records := []entity.Record{{
		{Key: "number", Value: "123456"},
		{Key: "about", Value: "✨ Hustle in silence. ✨ <b>"},
	}}

	data, err := encodeJSON(records)
	require.NoError(t, err)

	text := string(data)
	assert.Less(t, strings.Index(text, `"number"`), strings.Index(text, `"about"`))
	assert.Contains(t, text, "✨", "non-ASCII must stay literal")
	assert.Contains(t, text, "<b>", "html characters must stay unescaped")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "123456", decoded[0]["number"])
}

func TestEncodeJSONEmptyBatch(t *testing.T) {
	data, err := encodeJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeCSVUnionFields(t *testing.T) {
	records := raggedRecords()
	data, err := encodeCSV(records, fieldOrder(records))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "number,is_registered,about", lines[0])
	assert.Equal(t, "123456,false,", lines[1], "missing field renders as empty cell")
	assert.Equal(t, "1234567890,true,Living my best life!", lines[2])
}

func TestEncodeXMLUnionFields(t *testing.T) {
	records := raggedRecords()
	data, err := encodeXML(records, fieldOrder(records))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, "<profiles><profile>")
	assert.Contains(t, text, "<number>123456</number>")
	assert.Contains(t, text, "<about></about>", "record without the field gets an empty element")
	assert.Contains(t, text, "<about>Living my best life!</about>")
	assert.Equal(t, 2, strings.Count(text, "<profile>"))
}

func TestEncodeXMLEscapesContent(t *testing.T) {
	records := []entity.Record{{{Key: "about", Value: "a < b & c"}}}
	data, err := encodeXML(records, []string{"about"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "a &lt; b &amp; c")
}

func TestEncodeHTMLTable(t *testing.T) {
	records := raggedRecords()
	data, err := encodeHTML(records, fieldOrder(records))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "<title>WhatsApp Profiles Export</title>")
	assert.Contains(t, text, "<th>number</th><th>is_registered</th><th>about</th>")
	assert.Contains(t, text, "<td>123456</td><td>false</td><td></td>")
	assert.Contains(t, text, "<td>Living my best life!</td>")
}

func TestEncodeHTMLEscapesInjection(t *testing.T) {
	records := []entity.Record{{
		{Key: "about", Value: `<script>alert("x")</script>`},
	}}

	data, err := encodeHTML(records, []string{"about"})
	require.NoError(t, err)

	text := string(data)
	assert.NotContains(t, text, "<script>alert")
	assert.Contains(t, text, "&lt;script&gt;")
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "", coerceString(nil))
	assert.Equal(t, "plain", coerceString("plain"))
	assert.Equal(t, "true", coerceString(true))
	assert.Equal(t, "false", coerceString(false))
	assert.Equal(t, "42", coerceString(42))
}
