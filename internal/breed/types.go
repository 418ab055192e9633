package breed

// RawProfile mirrors the yaml schema for one breed file. Pointer fields
// distinguish "absent" from zero so the default -> breed merge can tell which
// values a breed file actually sets.
type RawProfile struct {
	Breed        string                        `yaml:"breed,omitempty"`
	ShadeBias    map[string]map[string]float64 `yaml:"shade_bias,omitempty"`
	MarkingBias  *RawMarkingBias               `yaml:"marking_bias,omitempty"`
	AdvancedBias map[string]float64            `yaml:"advanced_markings_bias,omitempty"`
	WhiteAlleles []string                      `yaml:"white_alleles,omitempty"`
	Notes        string                        `yaml:"notes,omitempty"`
}

// RawMarkingBias holds the face/leg tables as written in yaml.
type RawMarkingBias struct {
	Face                   map[string]float64 `yaml:"face,omitempty"`
	LegsGeneralProbability *float64           `yaml:"legs_general_probability,omitempty"`
	MaxLegsMarked          *int               `yaml:"max_legs_marked,omitempty"`
	LegSpecific            map[string]float64 `yaml:"leg_specific_probabilities,omitempty"`
}
