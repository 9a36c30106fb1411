package synth

import (
	"log/slog"
	"time"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// Builder composes validation, digest derivation and field synthesis
// into one profile per phone number.
type Builder struct {
	mediaBaseURL string
	logger       *slog.Logger
}

// NewBuilder creates a builder. mediaBaseURL prefixes every synthesized
// profile-picture link.
func NewBuilder(mediaBaseURL string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{mediaBaseURL: mediaBaseURL, logger: logger}
}

// Build validates raw and synthesizes its profile against the given
// reference instant. On rejection the validator's error is returned
// untouched so callers can inspect the failure kind.
func (b *Builder) Build(raw string, now time.Time) (*entity.Profile, error) {
	number, err := ValidateNumber(raw)
	if err != nil {
		return nil, err
	}
	return Synthesize(number, Digest(number), b.mediaBaseURL, now), nil
}
