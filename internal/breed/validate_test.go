package breed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRaw() RawProfile {
	prob := 0.3
	max := 2
	return RawProfile{
		Breed: "shire",
		ShadeBias: map[string]map[string]float64{
			"Default": {"standard": 1},
		},
		MarkingBias: &RawMarkingBias{
			Face:                   map[string]float64{"none": 1},
			LegsGeneralProbability: &prob,
			MaxLegsMarked:          &max,
			LegSpecific:            map[string]float64{"sock": 1},
		},
		AdvancedBias: map[string]float64{"snowflake": 1.5},
	}
}

func TestValidateRawAccepts(t *testing.T) {
	require.NoError(t, ValidateRaw(validRaw()))
}

func TestValidateRawCollectsProblems(t *testing.T) {
	bad := validRaw()
	p := 1.5
	n := 7
	bad.ShadeBias["Chestnut"] = map[string]float64{"liver": -1}
	bad.MarkingBias.LegsGeneralProbability = &p
	bad.MarkingBias.MaxLegsMarked = &n
	bad.AdvancedBias["sparkles"] = -2

	err := ValidateRaw(bad)
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "shade_bias[Chestnut]")
	require.Contains(t, msg, "legs_general_probability")
	require.Contains(t, msg, "max_legs_marked")
	require.Contains(t, msg, "sparkles")
}

func TestValidateRawMissingSections(t *testing.T) {
	err := ValidateRaw(RawProfile{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "shade_bias")
	require.Contains(t, err.Error(), "marking_bias is required")
}

func TestValidateRawAllZeroTable(t *testing.T) {
	bad := validRaw()
	bad.MarkingBias.Face = map[string]float64{"none": 0}
	err := ValidateRaw(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "face")
}

func TestNormalizeDefaults(t *testing.T) {
	raw := validRaw()
	raw.MarkingBias.MaxLegsMarked = nil
	raw.MarkingBias.LegsGeneralProbability = nil

	p := Normalize(raw)
	require.Equal(t, 4, p.MarkingBias.MaxLegsMarked)
	require.Zero(t, p.MarkingBias.LegsGeneralProbability)
	require.Equal(t, map[string]float64{"sock": 1}, p.MarkingBias.LegSpecific)
	require.Equal(t, map[string]float64{"snowflake": 1.5}, p.AdvancedBias)
}
