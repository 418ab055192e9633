package breed

import "github.com/xtding233/equus-backend/internal/genetics"

// Normalize converts a validated RawProfile into the engine-facing profile,
// applying file-format defaults: absent max_legs_marked means no cap (4),
// absent legs probability means 0.
func Normalize(cfg RawProfile) *genetics.BreedProfile {
	p := &genetics.BreedProfile{
		ShadeBias:    cfg.ShadeBias,
		AdvancedBias: cfg.AdvancedBias,
		WhiteAlleles: cfg.WhiteAlleles,
	}
	if cfg.MarkingBias != nil {
		p.MarkingBias = genetics.MarkingBias{
			Face:          cfg.MarkingBias.Face,
			LegSpecific:   cfg.MarkingBias.LegSpecific,
			MaxLegsMarked: 4,
		}
		if cfg.MarkingBias.LegsGeneralProbability != nil {
			p.MarkingBias.LegsGeneralProbability = *cfg.MarkingBias.LegsGeneralProbability
		}
		if cfg.MarkingBias.MaxLegsMarked != nil {
			p.MarkingBias.MaxLegsMarked = *cfg.MarkingBias.MaxLegsMarked
		}
	}
	return p
}
