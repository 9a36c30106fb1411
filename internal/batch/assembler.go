package batch

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/waprofiles/waprofiles/internal/entity"
	"github.com/waprofiles/waprofiles/internal/synth"
)

// Diagnostic records one skipped input and the rule that rejected it.
type Diagnostic struct {
	Input  string            `json:"input"`
	Reason synth.FailureKind `json:"reason"`
}

// Result is the outcome of one assembly run. Profiles keep input order
// minus skipped entries. An empty Profiles slice is not an error; the
// caller decides whether zero profiles is fatal.
type Result struct {
	RunID       string
	Profiles    []*entity.Profile
	Diagnostics []Diagnostic
}

// Assembler runs the profile builder over a sequence of raw numbers,
// isolating per-number failures so one bad input never aborts the batch.
type Assembler struct {
	builder *synth.Builder
	logger  *slog.Logger
	now     func() time.Time
}

// NewAssembler creates an assembler around the given builder.
func NewAssembler(builder *synth.Builder, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{builder: builder, logger: logger, now: time.Now}
}

// WithClock replaces the reference-time source. Tests use this to pin
// synthesis to a fixed instant.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Assemble builds one profile per valid number. Every rejected number is
// logged as a warning and recorded as a diagnostic; the loop never stops
// early. The whole run shares a single reference instant.
func (a *Assembler) Assemble(rawNumbers []string) Result {
	runID := uuid.NewString()
	ref := a.now().UTC()

	profiles := make([]*entity.Profile, 0, len(rawNumbers))
	var diagnostics []Diagnostic

	for _, raw := range rawNumbers {
		profile, err := a.builder.Build(raw, ref)
		if err != nil {
			kind, _ := synth.KindOf(err)
			a.logger.Warn("skipping number",
				"run_id", runID,
				"input", raw,
				"reason", string(kind),
				"err", err,
			)
			diagnostics = append(diagnostics, Diagnostic{Input: raw, Reason: kind})
			continue
		}
		profiles = append(profiles, profile)
	}

	a.logger.Info("batch assembled",
		"run_id", runID,
		"profiles", len(profiles),
		"skipped", len(diagnostics),
	)
	return Result{RunID: runID, Profiles: profiles, Diagnostics: diagnostics}
}
