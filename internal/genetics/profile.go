package genetics

// BreedProfile carries the per-breed bias tables the resolver consumes. It is
// supplied by the breed-configuration collaborator; the engine only reads it.
type BreedProfile struct {
	// ShadeBias maps a resolved color name to its shade weight table. The
	// ShadeDefaultKey entry is the fallback for names without their own table.
	ShadeBias map[string]map[string]float64

	MarkingBias MarkingBias

	// AdvancedBias maps advanced-marking effect keys to probability
	// multipliers. Absent keys mean 1.0; 0 disables the effect for the breed.
	AdvancedBias map[string]float64

	// WhiteAlleles is the breed's fully-white allele set at the W locus.
	// Empty means the default set.
	WhiteAlleles []string
}

// MarkingBias drives the face and leg draws.
type MarkingBias struct {
	Face                   map[string]float64
	LegsGeneralProbability float64
	MaxLegsMarked          int // 0..4; legs beyond the cap are forced to "none"
	LegSpecific            map[string]float64
}

// ShadeDefaultKey is the fallback entry in ShadeBias.
const ShadeDefaultKey = "Default"

// Advanced marking effect keys.
const (
	EffectSnowflake      = "snowflake"
	EffectFrost          = "frost"
	EffectBloodyShoulder = "bloody_shoulder"
)

var defaultWhiteAlleles = []string{"W", "W20"}

func (p *BreedProfile) multiplier(effect string) float64 {
	m, ok := p.AdvancedBias[effect]
	if !ok {
		return 1
	}
	return m
}

// isWhite reports whether any present W-locus effect allele is in the
// breed's fully-white set.
func (p *BreedProfile) isWhite(present []string) bool {
	set := p.WhiteAlleles
	if len(set) == 0 {
		set = defaultWhiteAlleles
	}
	for _, have := range present {
		for _, want := range set {
			if have == want {
				return true
			}
		}
	}
	return false
}

// shadeTable finds the weight table for name, falling back to the Default
// entry. The bool reports whether anything usable was found.
func (p *BreedProfile) shadeTable(name string) (map[string]float64, bool) {
	if t, ok := p.ShadeBias[name]; ok && len(t) > 0 {
		return t, true
	}
	if t, ok := p.ShadeBias[ShadeDefaultKey]; ok && len(t) > 0 {
		return t, true
	}
	return nil, false
}
