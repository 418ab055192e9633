package breed

import (
	"fmt"
	"strings"

	"github.com/xtding233/equus-backend/internal/genetics"
)

// ValidateRaw checks semantic constraints of a merged RawProfile. All
// problems are collected into one error so a config author sees everything
// at once.
func ValidateRaw(cfg RawProfile) error {
	var errs []string

	if len(cfg.ShadeBias) == 0 {
		errs = append(errs, "shade_bias must declare at least one color table")
	}
	for color, table := range cfg.ShadeBias {
		if msg := checkWeightTable(table); msg != "" {
			errs = append(errs, fmt.Sprintf("shade_bias[%s]: %s", color, msg))
		}
	}

	if cfg.MarkingBias == nil {
		errs = append(errs, "marking_bias is required")
	} else {
		mb := cfg.MarkingBias
		if len(mb.Face) == 0 {
			errs = append(errs, "marking_bias.face must be a non-empty weight table")
		} else if msg := checkWeightTable(mb.Face); msg != "" {
			errs = append(errs, "marking_bias.face: "+msg)
		}
		if mb.LegsGeneralProbability != nil {
			if p := *mb.LegsGeneralProbability; p < 0 || p > 1 {
				errs = append(errs, "marking_bias.legs_general_probability must be in [0,1]")
			}
		}
		if mb.MaxLegsMarked != nil {
			if n := *mb.MaxLegsMarked; n < 0 || n > 4 {
				errs = append(errs, "marking_bias.max_legs_marked must be in 0..4")
			}
		}
		if len(mb.LegSpecific) == 0 {
			errs = append(errs, "marking_bias.leg_specific_probabilities must be a non-empty weight table")
		} else if msg := checkWeightTable(mb.LegSpecific); msg != "" {
			errs = append(errs, "marking_bias.leg_specific_probabilities: "+msg)
		}
	}

	for effect, mult := range cfg.AdvancedBias {
		switch effect {
		case genetics.EffectSnowflake, genetics.EffectFrost, genetics.EffectBloodyShoulder:
		default:
			errs = append(errs, fmt.Sprintf("advanced_markings_bias: unknown effect %q", effect))
		}
		if mult < 0 {
			errs = append(errs, fmt.Sprintf("advanced_markings_bias[%s] must be >= 0", effect))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// checkWeightTable returns a problem description or "" when the table is a
// valid selector input (non-negative weights, at least one positive).
func checkWeightTable(t map[string]float64) string {
	positive := false
	for k, w := range t {
		if w < 0 {
			return fmt.Sprintf("weight %q must be >= 0", k)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return "needs at least one positive weight"
	}
	return ""
}
