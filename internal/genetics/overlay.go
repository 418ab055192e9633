package genetics

// overlayResult carries the post-overlay composite name plus the obligate
// flags set by Leopard Complex.
type overlayResult struct {
	name     string
	white    bool
	mottling bool
	striping bool
}

var roanName = map[BasePigment]string{
	Chestnut: "Red Roan",
	Bay:      "Bay Roan",
	Black:    "Blue Roan",
}

var grayUndertone = map[BasePigment]string{
	Chestnut: "Rose",
	Bay:      "Steel",
	Black:    "Iron",
}

// grayStage is one row of the age progression table. Rows are ordered by
// descending minAge; the first row at or below the horse's age applies.
// Gray is the only locus whose phenotype varies with age rather than
// genotype alone.
type grayStage struct {
	minAge     int
	label      string // empty keeps the underlying coat name
	undertoned bool   // prefix the base-pigment undertone
}

var grayStages = []grayStage{
	{minAge: 15, label: "Fleabitten Gray"},
	{minAge: 10, label: "Light Gray"},
	{minAge: 5, label: "Light Dapple Gray", undertoned: true},
	{minAge: 2, label: "Gray", undertoned: true},
	{minAge: 0, label: ""},
}

// grayStageName returns the displayed stage for age, or "" when the coat has
// not started turning.
func grayStageName(base BasePigment, ageYears int) string {
	if ageYears < 0 {
		ageYears = 0
	}
	for _, s := range grayStages {
		if ageYears >= s.minAge {
			if s.label == "" {
				return ""
			}
			if s.undertoned {
				return grayUndertone[base] + " " + s.label
			}
			return s.label
		}
	}
	return ""
}

// applyOverlays layers patterns over the diluted coat name, in fixed order:
// Dominant White (terminates the cascade), Leopard Complex / Pattern-1,
// Tobiano, Roan, then age-gated Gray on top of everything.
func applyOverlays(base BasePigment, name string, a activeLoci, profile *BreedProfile, ageYears int) overlayResult {
	if profile.isWhite(a.whiteAlleles) {
		return overlayResult{name: "White", white: true}
	}

	out := overlayResult{name: name}

	if a.leopard {
		// mottling and striping come with LP itself, pattern or not
		out.mottling = true
		out.striping = true
		if a.pattern1 {
			out.name += " Leopard Appaloosa"
		}
	}

	if a.tobiano {
		out.name += " Tobiano"
	}

	if a.roan {
		if out.name == string(base) {
			out.name = roanName[base]
		} else {
			out.name += " Roan"
		}
	}

	if a.gray {
		if stage := grayStageName(base, ageYears); stage != "" {
			out.name = stage
		}
	}

	return out
}

// GrayStageBoundaries lists the ages at which a gray coat changes stage,
// for callers that re-resolve when a horse crosses one.
func GrayStageBoundaries() []int {
	out := make([]int, 0, len(grayStages))
	for i := len(grayStages) - 1; i >= 0; i-- {
		if grayStages[i].minAge > 0 {
			out = append(out, grayStages[i].minAge)
		}
	}
	return out
}
