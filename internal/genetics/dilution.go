package genetics

// The dilution cascade is an ordered list of tagged rules rather than nested
// conditionals: each rule is a predicate over (base pigment, active flags)
// plus a naming function, evaluated in priority order with first match
// winning. Higher-precedence compound matches therefore short-circuit
// lower-precedence partial ones, and new loci slot in as table rows.

type dilutionRule struct {
	tag  string
	when func(base BasePigment, a activeLoci) bool
	name func(base BasePigment, a activeLoci) string
}

var (
	champagnePrefix = map[BasePigment]string{
		Chestnut: "Gold",
		Bay:      "Amber",
		Black:    "Classic",
	}
	creamDoubleName = map[BasePigment]string{
		Chestnut: "Cremello",
		Bay:      "Perlino",
		Black:    "Smoky Cream",
	}
	creamSingleName = map[BasePigment]string{
		Chestnut: "Palomino",
		Bay:      "Buckskin",
		Black:    "Smoky Black",
	}
	dunName = map[BasePigment]string{
		Chestnut: "Red Dun",
		Bay:      "Bay Dun",
		Black:    "Grulla",
	}
	creamDunName = map[BasePigment]string{
		Chestnut: "Palomino Dun",
		Bay:      "Buckskin Dun",
		Black:    "Smoky Grulla",
	}
	creamPearlName = map[BasePigment]string{
		Chestnut: "Palomino Pearl",
		Bay:      "Buckskin Pearl",
		Black:    "Smoky Pearl",
	}
)

var dilutionRules = []dilutionRule{
	{
		tag:  "champagne-ivory",
		when: func(_ BasePigment, a activeLoci) bool { return a.champagne && a.creamDoses == 2 },
		name: func(b BasePigment, _ activeLoci) string { return champagnePrefix[b] + " Ivory Champagne" },
	},
	{
		tag:  "champagne-cream-dun",
		when: func(_ BasePigment, a activeLoci) bool { return a.champagne && a.creamDoses == 1 && a.dun },
		name: func(b BasePigment, _ activeLoci) string { return champagnePrefix[b] + " Cream Champagne Dun" },
	},
	{
		tag:  "champagne-cream",
		when: func(_ BasePigment, a activeLoci) bool { return a.champagne && a.creamDoses == 1 },
		name: func(b BasePigment, _ activeLoci) string { return champagnePrefix[b] + " Cream Champagne" },
	},
	{
		tag:  "champagne-dun",
		when: func(_ BasePigment, a activeLoci) bool { return a.champagne && a.dun },
		name: func(b BasePigment, _ activeLoci) string { return champagnePrefix[b] + " Champagne Dun" },
	},
	{
		tag:  "champagne",
		when: func(_ BasePigment, a activeLoci) bool { return a.champagne },
		name: func(b BasePigment, _ activeLoci) string { return champagnePrefix[b] + " Champagne" },
	},
	{
		// double Cream fully dilutes; dun factors are not visible on it
		tag:  "cream-double",
		when: func(_ BasePigment, a activeLoci) bool { return a.creamDoses == 2 },
		name: func(b BasePigment, _ activeLoci) string { return creamDoubleName[b] },
	},
	{
		// het Cream + het Pearl: pastel pseudo-double-dilute compound
		tag:  "cream-pearl",
		when: func(_ BasePigment, a activeLoci) bool { return a.creamDoses == 1 && a.pearlDoses >= 1 },
		name: func(b BasePigment, _ activeLoci) string { return creamPearlName[b] },
	},
	{
		tag:  "cream-dun",
		when: func(_ BasePigment, a activeLoci) bool { return a.creamDoses == 1 && a.dun },
		name: func(b BasePigment, _ activeLoci) string { return creamDunName[b] },
	},
	{
		tag:  "cream-single",
		when: func(_ BasePigment, a activeLoci) bool { return a.creamDoses == 1 },
		name: func(b BasePigment, _ activeLoci) string { return creamSingleName[b] },
	},
	{
		tag:  "dun",
		when: func(_ BasePigment, a activeLoci) bool { return a.dun },
		name: func(b BasePigment, _ activeLoci) string { return dunName[b] },
	},
	{
		// homozygous Pearl alone is only visibly named on red pigment
		tag:  "pearl-apricot",
		when: func(b BasePigment, a activeLoci) bool { return b == Chestnut && a.pearlDoses == 2 },
		name: func(BasePigment, activeLoci) string { return "Apricot" },
	},
	{
		tag:  "mushroom",
		when: func(b BasePigment, a activeLoci) bool { return b == Chestnut && a.mushroom },
		name: func(BasePigment, activeLoci) string { return "Mushroom Chestnut" },
	},
	{
		tag:  "base",
		when: func(BasePigment, activeLoci) bool { return true },
		name: func(b BasePigment, _ activeLoci) string { return string(b) },
	},
}

// resolveDilutions walks the rule table, then applies Silver as a modifier
// pass. Silver only shows on black pigment, so chestnut-based coats pass
// through untouched.
func resolveDilutions(base BasePigment, a activeLoci) string {
	name := string(base)
	for _, r := range dilutionRules {
		if r.when(base, a) {
			name = r.name(base, a)
			break
		}
	}

	if a.silver && base != Chestnut {
		if name == string(Black) {
			name = "Silver Dapple"
		} else {
			name = "Silver " + name
		}
	}
	return name
}
