// Package sim estimates phenotype outcome distributions by repeated
// resolution with a seeded source. Used to check that resolution is
// reproducible in distribution and to let config authors eyeball the effect
// of a bias table.
package sim

import (
	"errors"
	"math"
	"sort"

	"github.com/xtding233/equus-backend/internal/genetics"
)

// Params describes one simulation run. The same Params (same seed included)
// always produce the same Report.
type Params struct {
	Genotype genetics.Genotype
	Profile  *genetics.BreedProfile
	AgeYears int
	Trials   int
	Seed     uint64
}

// Stats summarizes integer samples.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// Report aggregates outcome frequencies over all trials.
type Report struct {
	Trials int `json:"trials"`

	// Frequencies in [0,1], keyed by outcome.
	Colors map[string]float64 `json:"colors"`
	Shades map[string]float64 `json:"shades"`
	Faces  map[string]float64 `json:"faces"`

	// Rates of the boolean marking flags.
	Mottling       float64 `json:"mottling"`
	Striping       float64 `json:"striping"`
	Snowflake      float64 `json:"snowflake"`
	Frost          float64 `json:"frost"`
	BloodyShoulder float64 `json:"bloody_shoulder"`

	// Distribution of marked-leg counts per trial.
	LegsMarked Stats `json:"legs_marked"`
}

// Run resolves the fixed genotype Trials times and tallies outcomes.
func Run(p Params) (Report, error) {
	if p.Trials <= 0 {
		return Report{}, errors.New("trials must be >= 1")
	}

	sel := genetics.NewWeightedSelector(genetics.NewSeededRNG(p.Seed))
	resolver := genetics.NewResolver(sel)

	rep := Report{
		Trials: p.Trials,
		Colors: make(map[string]float64),
		Shades: make(map[string]float64),
		Faces:  make(map[string]float64),
	}
	legCounts := make([]int, p.Trials)
	var mottling, striping, snowflake, frost, bloody int

	for i := 0; i < p.Trials; i++ {
		ph, err := resolver.Resolve(p.Genotype, p.Profile, p.AgeYears)
		if err != nil {
			return Report{}, err
		}
		rep.Colors[ph.FinalDisplayColor]++
		rep.Shades[ph.DeterminedShade]++
		if ph.Markings.Face != "" {
			rep.Faces[ph.Markings.Face]++
		}
		marked := 0
		for _, leg := range ph.Markings.Legs {
			if leg != "none" {
				marked++
			}
		}
		legCounts[i] = marked
		if ph.Markings.Mottling {
			mottling++
		}
		if ph.Markings.Striping {
			striping++
		}
		if ph.Markings.Snowflake {
			snowflake++
		}
		if ph.Markings.Frost {
			frost++
		}
		if ph.Markings.BloodyShoulder {
			bloody++
		}
	}

	n := float64(p.Trials)
	for k := range rep.Colors {
		rep.Colors[k] /= n
	}
	for k := range rep.Shades {
		rep.Shades[k] /= n
	}
	for k := range rep.Faces {
		rep.Faces[k] /= n
	}
	rep.Mottling = float64(mottling) / n
	rep.Striping = float64(striping) / n
	rep.Snowflake = float64(snowflake) / n
	rep.Frost = float64(frost) / n
	rep.BloodyShoulder = float64(bloody) / n
	rep.LegsMarked = calcStats(legCounts)

	return rep, nil
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
