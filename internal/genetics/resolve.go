package genetics

import "fmt"

// Phenotype is the displayed outcome of one resolution. The caller persists
// it; the engine owns no storage.
type Phenotype struct {
	FinalDisplayColor string   `json:"final_display_color"`
	DeterminedShade   string   `json:"determined_shade"`
	Markings          Markings `json:"phenotypic_markings"`
}

// Resolver composes base pigment, the dilution cascade, pattern overlays,
// the shade draw and the marking draws into one result. It is a pure
// function of its inputs plus the injected Selector, so it is safe to call
// concurrently as long as the Selector is.
type Resolver struct {
	sel Selector
}

// NewResolver wraps sel; nil gets the crypto-backed weighted selector.
func NewResolver(sel Selector) *Resolver {
	if sel == nil {
		sel = NewWeightedSelector(nil)
	}
	return &Resolver{sel: sel}
}

// Resolve computes the phenotype for one genotype/profile/age triple.
// Identical inputs yield the same probability distribution, not the same
// output. Resolution is all-or-nothing: on error no partial result leaks.
func (r *Resolver) Resolve(g Genotype, profile *BreedProfile, ageYears int) (Phenotype, error) {
	if profile == nil {
		return Phenotype{}, fmt.Errorf("%w: nil profile", ErrMissingBreedProfile)
	}

	a, err := parseActive(g)
	if err != nil {
		return Phenotype{}, err
	}

	base := resolveBasePigment(a)
	name := resolveDilutions(base, a)
	ov := applyOverlays(base, name, a, profile, ageYears)

	shade, err := r.drawShade(profile, ov.name)
	if err != nil {
		return Phenotype{}, err
	}

	// Dominant White short-circuits: no markings at all
	if ov.white {
		return Phenotype{
			FinalDisplayColor: ov.name,
			DeterminedShade:   shade,
		}, nil
	}

	m, err := generateMarkings(r.sel, profile, a, ageYears, ov)
	if err != nil {
		return Phenotype{}, err
	}

	return Phenotype{
		FinalDisplayColor: ov.name,
		DeterminedShade:   shade,
		Markings:          m,
	}, nil
}

func (r *Resolver) drawShade(profile *BreedProfile, name string) (string, error) {
	table, ok := profile.shadeTable(name)
	if !ok {
		return "", fmt.Errorf("%w: no shade_bias entry for %q and no %s fallback", ErrMissingBreedProfile, name, ShadeDefaultKey)
	}
	return r.sel.Select(table)
}
