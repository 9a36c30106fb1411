// Package export turns an assembled batch of profiles into exactly one
// serialized output file.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/waprofiles/waprofiles/constants"
	"github.com/waprofiles/waprofiles/internal/common"
	"github.com/waprofiles/waprofiles/internal/entity"
)

// Service dispatches a batch of profiles to the encoder for the chosen
// format and writes the result to the destination path.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Export serializes profiles to dest in the named format. The format
// gate runs before anything touches the filesystem. Writes are not
// atomic: an encoding or write failure can leave a partial file behind.
func (s *Service) Export(profiles []*entity.Profile, dest, format string) error {
	start := time.Now()

	f, ok := constants.ParseFormat(format)
	if !ok {
		return fmt.Errorf("%w %q, supported formats: %s",
			common.ErrUnsupportedFormat, format, strings.Join(constants.Formats(), ", "))
	}

	records := make([]entity.Record, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, p.Record())
	}
	fields := fieldOrder(records)

	// Excel output must carry the spreadsheet extension regardless of
	// what the caller asked for.
	if f == constants.FormatExcel && !strings.EqualFold(filepath.Ext(dest), constants.XLSXExtension) {
		dest = strings.TrimSuffix(dest, filepath.Ext(dest)) + constants.XLSXExtension
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var (
		data []byte
		err  error
	)
	switch f {
	case constants.FormatJSON:
		data, err = encodeJSON(records)
	case constants.FormatCSV:
		data, err = encodeCSV(records, fields)
	case constants.FormatXML:
		data, err = encodeXML(records, fields)
	case constants.FormatHTML:
		data, err = encodeHTML(records, fields)
	case constants.FormatExcel:
		data, err = encodeXLSX(records, fields)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	s.logger.Info("export.ok",
		"format", string(f),
		"path", dest,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// fieldOrder computes the union field ordering for tabular, tree and
// rendered encoders: one pass over all records, each field name recorded
// the first time it is seen. Every row is then rendered against this one
// ordering, with empty values for fields a record lacks.
func fieldOrder(records []entity.Record) []string {
	var order []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, f := range rec {
			if _, ok := seen[f.Key]; ok {
				continue
			}
			seen[f.Key] = struct{}{}
			order = append(order, f.Key)
		}
	}
	return order
}

// coerceString renders a field value for text-based formats.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}
