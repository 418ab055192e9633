package genetics

import "fmt"

// Markings is the drawn marking set for one horse.
type Markings struct {
	Face           string   `json:"face"`
	Legs           []string `json:"legs"`
	Mottling       bool     `json:"mottling,omitempty"`
	Striping       bool     `json:"striping,omitempty"`
	Snowflake      bool     `json:"snowflake,omitempty"`
	Frost          bool     `json:"frost,omitempty"`
	BloodyShoulder bool     `json:"bloody_shoulder,omitempty"`
}

const legCount = 4

// Intrinsic base rates for the Appaloosa-only advanced effects, before age
// scaling and the breed multiplier.
const (
	snowflakeBaseRate      = 0.25
	frostBaseRate          = 0.20
	bloodyShoulderBaseRate = 0.10
)

// ageScale ramps advanced-marking rates in over the first decade; the
// patterns develop with age rather than showing on foals.
func ageScale(ageYears int) float64 {
	if ageYears <= 0 {
		return 0
	}
	if ageYears >= 10 {
		return 1
	}
	return float64(ageYears) / 10
}

// generateMarkings draws face and legs from the breed bias tables, then the
// LP-gated advanced effects. The obligate mottling/striping flags are set by
// the overlay stage and arrive via ov.
func generateMarkings(sel Selector, profile *BreedProfile, a activeLoci, ageYears int, ov overlayResult) (Markings, error) {
	mb := profile.MarkingBias
	if len(mb.Face) == 0 {
		return Markings{}, fmt.Errorf("%w: marking_bias.face", ErrMissingBreedProfile)
	}

	face, err := sel.Select(mb.Face)
	if err != nil {
		return Markings{}, err
	}

	m := Markings{
		Face:     face,
		Legs:     make([]string, legCount),
		Mottling: ov.mottling,
		Striping: ov.striping,
	}

	maxLegs := mb.MaxLegsMarked
	if maxLegs > legCount {
		maxLegs = legCount
	}
	marked := 0
	for i := 0; i < legCount; i++ {
		m.Legs[i] = "none"
		if marked >= maxLegs {
			continue
		}
		hit, err := chance(sel, mb.LegsGeneralProbability)
		if err != nil {
			return Markings{}, err
		}
		if !hit {
			continue
		}
		if len(mb.LegSpecific) == 0 {
			return Markings{}, fmt.Errorf("%w: marking_bias.leg_specific_probabilities", ErrMissingBreedProfile)
		}
		kind, err := sel.Select(mb.LegSpecific)
		if err != nil {
			return Markings{}, err
		}
		m.Legs[i] = kind
		if kind != "none" {
			marked++
		}
	}

	if a.leopard {
		scale := ageScale(ageYears)
		rolls := []struct {
			base   float64
			effect string
			flag   *bool
		}{
			{snowflakeBaseRate, EffectSnowflake, &m.Snowflake},
			{frostBaseRate, EffectFrost, &m.Frost},
			{bloodyShoulderBaseRate, EffectBloodyShoulder, &m.BloodyShoulder},
		}
		for _, roll := range rolls {
			hit, err := chance(sel, roll.base*scale*profile.multiplier(roll.effect))
			if err != nil {
				return Markings{}, err
			}
			*roll.flag = hit
		}
	}

	return m, nil
}
