package genetics

import (
	"fmt"
	"strings"
)

// Genotype maps locus keys to allele pairs like "E/e". Loci absent from the
// map resolve as homozygous wild-type. The engine never mutates it.
type Genotype map[string]string

// DominanceClass describes how a locus's allele pairs resolve.
type DominanceClass int

const (
	// Dominant loci act with one or two effect alleles alike.
	Dominant DominanceClass = iota
	// Recessive loci act only when both alleles are the effect allele.
	Recessive
	// Incomplete loci distinguish single dose from double dose.
	Incomplete
)

// Locus declares one genetic slot: allele alphabet, wild-type allele and
// dominance class. Alleles other than the wild type are effect alleles.
type Locus struct {
	Key      string
	Alleles  []string
	WildType string
	Class    DominanceClass
}

// Locus keys understood by the resolver.
const (
	LocusExtension = "E_Extension"
	LocusAgouti    = "A_Agouti"
	LocusCream     = "Cr_Cream"
	LocusDun       = "D_Dun"
	LocusChampagne = "Ch_Champagne"
	LocusSilver    = "Z_Silver"
	LocusPearl     = "Prl_Pearl"
	LocusMushroom  = "Mu_Mushroom"
	LocusWhite     = "W_DominantWhite"
	LocusGray      = "G_Gray"
	LocusTobiano   = "To_Tobiano"
	LocusRoan      = "Rn_Roan"
	LocusLeopard   = "LP_LeopardComplex"
	LocusPattern1  = "PATN1_Pattern1"
)

var registry = map[string]Locus{
	LocusExtension: {Key: LocusExtension, Alleles: []string{"E", "e"}, WildType: "E", Class: Recessive},
	LocusAgouti:    {Key: LocusAgouti, Alleles: []string{"A", "a"}, WildType: "A", Class: Recessive},
	LocusCream:     {Key: LocusCream, Alleles: []string{"Cr", "n"}, WildType: "n", Class: Incomplete},
	LocusDun:       {Key: LocusDun, Alleles: []string{"D", "n"}, WildType: "n", Class: Dominant},
	LocusChampagne: {Key: LocusChampagne, Alleles: []string{"Ch", "n"}, WildType: "n", Class: Incomplete},
	LocusSilver:    {Key: LocusSilver, Alleles: []string{"Z", "n"}, WildType: "n", Class: Dominant},
	LocusPearl:     {Key: LocusPearl, Alleles: []string{"Prl", "n"}, WildType: "n", Class: Recessive},
	LocusMushroom:  {Key: LocusMushroom, Alleles: []string{"Mu", "n"}, WildType: "n", Class: Recessive},
	LocusWhite:     {Key: LocusWhite, Alleles: []string{"W", "W20", "n"}, WildType: "n", Class: Dominant},
	LocusGray:      {Key: LocusGray, Alleles: []string{"G", "n"}, WildType: "n", Class: Dominant},
	LocusTobiano:   {Key: LocusTobiano, Alleles: []string{"To", "n"}, WildType: "n", Class: Dominant},
	LocusRoan:      {Key: LocusRoan, Alleles: []string{"Rn", "n"}, WildType: "n", Class: Dominant},
	LocusLeopard:   {Key: LocusLeopard, Alleles: []string{"LP", "lp"}, WildType: "lp", Class: Incomplete},
	LocusPattern1:  {Key: LocusPattern1, Alleles: []string{"PATN1", "n"}, WildType: "n", Class: Dominant},
}

// Loci returns the declared loci, for config validation and tooling.
func Loci() []Locus {
	out := make([]Locus, 0, len(registry))
	for _, l := range registry {
		out = append(out, l)
	}
	return out
}

// AllelePair is one parsed locus state.
type AllelePair struct {
	A, B string
}

// parsePair splits and validates a raw "X/Y" pair against the locus alphabet.
func parsePair(l Locus, raw string) (AllelePair, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return AllelePair{}, fmt.Errorf("%w: locus %s pair %q is not of the form a/b", ErrUnknownLocus, l.Key, raw)
	}
	p := AllelePair{A: strings.TrimSpace(parts[0]), B: strings.TrimSpace(parts[1])}
	for _, al := range []string{p.A, p.B} {
		if !l.hasAllele(al) {
			return AllelePair{}, fmt.Errorf("%w: allele %q not in alphabet of locus %s", ErrUnknownLocus, al, l.Key)
		}
	}
	return p, nil
}

func (l Locus) hasAllele(a string) bool {
	for _, al := range l.Alleles {
		if al == a {
			return true
		}
	}
	return false
}

// effectDoses counts alleles in the pair that differ from the wild type.
func (l Locus) effectDoses(p AllelePair) int {
	n := 0
	if p.A != l.WildType {
		n++
	}
	if p.B != l.WildType {
		n++
	}
	return n
}

// activeLoci is the parsed, effect-level view of a genotype that the naming
// rules operate on.
type activeLoci struct {
	extensionRecessive bool // e/e: Agouti is silenced
	agoutiRecessive    bool // a/a on non-chestnut: black
	creamDoses         int
	dun                bool
	champagne          bool
	silver             bool
	pearlDoses         int
	mushroom           bool
	whiteAlleles       []string // effect alleles present at W
	gray               bool
	tobiano            bool
	roan               bool
	leopard            bool
	pattern1           bool
}

// parseActive validates g against the registry and folds each declared locus
// (present or defaulted) into flags. Fail-fast on undeclared loci or alleles.
func parseActive(g Genotype) (activeLoci, error) {
	for key := range g {
		if _, ok := registry[key]; !ok {
			return activeLoci{}, fmt.Errorf("%w: locus %q is not declared", ErrUnknownLocus, key)
		}
	}

	pairAt := func(key string) (AllelePair, error) {
		l := registry[key]
		raw, ok := g[key]
		if !ok {
			return AllelePair{A: l.WildType, B: l.WildType}, nil
		}
		return parsePair(l, raw)
	}

	var a activeLoci
	for key := range registry {
		pair, err := pairAt(key)
		if err != nil {
			return activeLoci{}, err
		}
		l := registry[key]
		doses := l.effectDoses(pair)
		switch key {
		case LocusExtension:
			a.extensionRecessive = doses == 2
		case LocusAgouti:
			a.agoutiRecessive = doses == 2
		case LocusCream:
			a.creamDoses = doses
		case LocusDun:
			a.dun = doses >= 1
		case LocusChampagne:
			a.champagne = doses >= 1
		case LocusSilver:
			a.silver = doses >= 1
		case LocusPearl:
			a.pearlDoses = doses
		case LocusMushroom:
			a.mushroom = doses == 2
		case LocusWhite:
			for _, al := range []string{pair.A, pair.B} {
				if al != l.WildType {
					a.whiteAlleles = append(a.whiteAlleles, al)
				}
			}
		case LocusGray:
			a.gray = doses >= 1
		case LocusTobiano:
			a.tobiano = doses >= 1
		case LocusRoan:
			a.roan = doses >= 1
		case LocusLeopard:
			a.leopard = doses >= 1
		case LocusPattern1:
			a.pattern1 = doses >= 1
		}
	}
	return a, nil
}

// Validate checks a genotype against the registry without resolving it.
func Validate(g Genotype) error {
	_, err := parseActive(g)
	return err
}
