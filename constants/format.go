package constants

import "strings"

// Format is the canonical name of a supported export format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatXML   Format = "xml"
	FormatHTML  Format = "html"
	FormatExcel Format = "excel"
)

// XLSXExtension is the extension Excel output files must carry.
const XLSXExtension = ".xlsx"

var allFormats = []Format{
	FormatJSON,
	FormatCSV,
	FormatXML,
	FormatHTML,
	FormatExcel,
}

// Formats returns the supported format names in a stable order.
func Formats() []string {
	result := make([]string, len(allFormats))
	for i, f := range allFormats {
		result[i] = string(f)
	}
	return result
}

// ParseFormat canonicalizes a user-supplied format name.
func ParseFormat(input string) (Format, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, f := range allFormats {
		if string(f) == normalized {
			return f, true
		}
	}
	return "", false
}
