package synth

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/zarlcorp/zspecimen/internal/specimen"
)

// Synthesizer composes text and portrait synthesis into one call.
// It holds no per-record state and is safe for concurrent use.
type Synthesizer struct {
	gen      ContentGenerator
	cfg      Config
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a Synthesizer over gen. A nil logger disables logging.
func New(gen ContentGenerator, cfg Config, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{
		gen:      gen,
		cfg:      cfg.withDefaults(),
		log:      log.Named("synth"),
		validate: validator.New(),
	}
}

// SynthesizeIdentity runs text synthesis, then portrait synthesis on its
// result. A text failure returns a *SynthesisError and no portrait call is
// made. A portrait failure never surfaces; the record carries a placeholder.
func (s *Synthesizer) SynthesizeIdentity(ctx context.Context, f specimen.Filter) (specimen.IdentityRecord, error) {
	raw, err := s.SynthesizeTextRecord(ctx, f)
	if err != nil {
		s.log.Error("text synthesis failed", zap.Error(err))
		return specimen.IdentityRecord{}, err
	}

	rec := specimen.IdentityRecord{
		RawRecord:   raw,
		PortraitRef: s.SynthesizePortrait(ctx, raw),
	}

	s.log.Info("identity synthesized",
		zap.String("record_id", rec.RecordID),
		zap.String("type", string(rec.InstitutionType)),
		zap.String("region", rec.Region),
	)
	return rec, nil
}
