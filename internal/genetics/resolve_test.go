package genetics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveChestnutEndToEnd(t *testing.T) {
	profile := &BreedProfile{
		ShadeBias: map[string]map[string]float64{"Chestnut": {"standard": 1}},
		MarkingBias: MarkingBias{
			Face:        map[string]float64{"none": 1},
			LegSpecific: map[string]float64{"none": 1},
		},
	}
	g := Genotype{LocusExtension: "e/e", LocusAgouti: "a/a"}

	ph, err := NewResolver(nil).Resolve(g, profile, 3)
	require.NoError(t, err)
	require.Equal(t, "Chestnut", ph.FinalDisplayColor)
	require.Equal(t, "standard", ph.DeterminedShade)
	require.Equal(t, "none", ph.Markings.Face)
	require.Equal(t, []string{"none", "none", "none", "none"}, ph.Markings.Legs)
}

func TestResolvePerlinoEndToEnd(t *testing.T) {
	profile := &BreedProfile{
		ShadeBias: map[string]map[string]float64{ShadeDefaultKey: {"standard": 1}},
		MarkingBias: MarkingBias{
			Face:        map[string]float64{"none": 1},
			LegSpecific: map[string]float64{"none": 1},
		},
	}
	g := Genotype{LocusExtension: "E/e", LocusAgouti: "A/A", LocusCream: "Cr/Cr"}

	ph, err := NewResolver(nil).Resolve(g, profile, 4)
	require.NoError(t, err)
	require.Equal(t, "Perlino", ph.FinalDisplayColor)
}

func TestResolveLeopardAppaloosaEndToEnd(t *testing.T) {
	profile := &BreedProfile{
		ShadeBias: map[string]map[string]float64{ShadeDefaultKey: {"standard": 1}},
		MarkingBias: MarkingBias{
			Face:        map[string]float64{"none": 1},
			LegSpecific: map[string]float64{"none": 1},
		},
	}
	g := Genotype{
		LocusExtension: "e/e",
		LocusLeopard:   "LP/lp",
		LocusPattern1:  "PATN1/n",
	}

	ph, err := NewResolver(firstPositive()).Resolve(g, profile, 3)
	require.NoError(t, err)
	require.Equal(t, "Chestnut Leopard Appaloosa", ph.FinalDisplayColor)
	require.True(t, ph.Markings.Mottling)
	require.True(t, ph.Markings.Striping)
}

func TestResolveWhiteShortCircuit(t *testing.T) {
	profile := &BreedProfile{
		ShadeBias: map[string]map[string]float64{ShadeDefaultKey: {"pale": 1}},
		MarkingBias: MarkingBias{
			Face:                   map[string]float64{"blaze": 1},
			LegsGeneralProbability: 1,
			MaxLegsMarked:          4,
			LegSpecific:            map[string]float64{"stocking": 1},
		},
	}
	g := withLoci(bayBase, Genotype{
		LocusWhite:   "W/n",
		LocusCream:   "Cr/Cr",
		LocusGray:    "G/n",
		LocusTobiano: "To/n",
	})

	ph, err := NewResolver(nil).Resolve(g, profile, 12)
	require.NoError(t, err)
	require.Equal(t, "White", ph.FinalDisplayColor)
	require.Equal(t, "pale", ph.DeterminedShade)
	require.Empty(t, ph.Markings.Face)
	require.Empty(t, ph.Markings.Legs)
	require.False(t, ph.Markings.Mottling)
}

func TestResolveUnknownLocus(t *testing.T) {
	profile := &BreedProfile{
		ShadeBias:   map[string]map[string]float64{ShadeDefaultKey: {"standard": 1}},
		MarkingBias: MarkingBias{Face: map[string]float64{"none": 1}, LegSpecific: map[string]float64{"none": 1}},
	}

	_, err := NewResolver(nil).Resolve(Genotype{"X_Bogus": "x/x"}, profile, 1)
	require.True(t, errors.Is(err, ErrUnknownLocus))

	_, err = NewResolver(nil).Resolve(Genotype{LocusExtension: "E/q"}, profile, 1)
	require.True(t, errors.Is(err, ErrUnknownLocus))

	_, err = NewResolver(nil).Resolve(Genotype{LocusExtension: "EEE"}, profile, 1)
	require.True(t, errors.Is(err, ErrUnknownLocus))
}

func TestResolveMissingProfile(t *testing.T) {
	_, err := NewResolver(nil).Resolve(chestnutBase, nil, 1)
	require.True(t, errors.Is(err, ErrMissingBreedProfile))

	// shade table without the resolved key and without Default
	profile := &BreedProfile{
		ShadeBias:   map[string]map[string]float64{"Bay": {"standard": 1}},
		MarkingBias: MarkingBias{Face: map[string]float64{"none": 1}, LegSpecific: map[string]float64{"none": 1}},
	}
	_, err = NewResolver(nil).Resolve(chestnutBase, profile, 1)
	require.True(t, errors.Is(err, ErrMissingBreedProfile))
}

func TestResolveNeverMutatesGenotype(t *testing.T) {
	profile := &BreedProfile{
		ShadeBias:   map[string]map[string]float64{ShadeDefaultKey: {"standard": 1}},
		MarkingBias: MarkingBias{Face: map[string]float64{"none": 1}, LegSpecific: map[string]float64{"none": 1}},
	}
	g := Genotype{LocusExtension: "e/e", LocusCream: "Cr/n"}

	_, err := NewResolver(nil).Resolve(g, profile, 2)
	require.NoError(t, err)
	require.Equal(t, Genotype{LocusExtension: "e/e", LocusCream: "Cr/n"}, g)
}
