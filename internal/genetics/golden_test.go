package genetics

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Locks the composite naming table (dilution cascade + overlays) against a
// golden file so a rule-table edit cannot silently rename coats. The table
// below only exercises the deterministic naming path; no randomness involved.
func TestNamingTableGolden(t *testing.T) {
	rows := []struct {
		label string
		g     Genotype
		age   int
	}{
		{"chestnut", chestnutBase, 0},
		{"bay", Genotype{}, 0},
		{"black", blackBase, 0},
		{"palomino", withLoci(chestnutBase, Genotype{LocusCream: "Cr/n"}), 0},
		{"buckskin", withLoci(bayBase, Genotype{LocusCream: "Cr/n"}), 0},
		{"smoky-black", withLoci(blackBase, Genotype{LocusCream: "Cr/n"}), 0},
		{"cremello", withLoci(chestnutBase, Genotype{LocusCream: "Cr/Cr"}), 0},
		{"perlino", withLoci(bayBase, Genotype{LocusCream: "Cr/Cr"}), 0},
		{"smoky-cream", withLoci(blackBase, Genotype{LocusCream: "Cr/Cr"}), 0},
		{"red-dun", withLoci(chestnutBase, Genotype{LocusDun: "D/n"}), 0},
		{"bay-dun", withLoci(bayBase, Genotype{LocusDun: "D/n"}), 0},
		{"grulla", withLoci(blackBase, Genotype{LocusDun: "D/n"}), 0},
		{"buckskin-dun", withLoci(bayBase, Genotype{LocusCream: "Cr/n", LocusDun: "D/n"}), 0},
		{"smoky-grulla", withLoci(blackBase, Genotype{LocusCream: "Cr/n", LocusDun: "D/n"}), 0},
		{"gold-champagne", withLoci(chestnutBase, Genotype{LocusChampagne: "Ch/n"}), 0},
		{"amber-cream-champagne", withLoci(bayBase, Genotype{LocusChampagne: "Ch/n", LocusCream: "Cr/n"}), 0},
		{"classic-champagne-dun", withLoci(blackBase, Genotype{LocusChampagne: "Ch/n", LocusDun: "D/n"}), 0},
		{"amber-ivory-champagne", withLoci(bayBase, Genotype{LocusChampagne: "Ch/n", LocusCream: "Cr/Cr"}), 0},
		{"silver-bay", withLoci(bayBase, Genotype{LocusSilver: "Z/n"}), 0},
		{"silver-dapple", withLoci(blackBase, Genotype{LocusSilver: "Z/n"}), 0},
		{"silver-grulla", withLoci(blackBase, Genotype{LocusSilver: "Z/n", LocusDun: "D/n"}), 0},
		{"apricot", withLoci(chestnutBase, Genotype{LocusPearl: "Prl/Prl"}), 0},
		{"palomino-pearl", withLoci(chestnutBase, Genotype{LocusCream: "Cr/n", LocusPearl: "Prl/n"}), 0},
		{"mushroom-chestnut", withLoci(chestnutBase, Genotype{LocusMushroom: "Mu/Mu"}), 0},
		{"white", withLoci(bayBase, Genotype{LocusWhite: "W/n"}), 0},
		{"chestnut-leopard", withLoci(chestnutBase, Genotype{LocusLeopard: "LP/lp", LocusPattern1: "PATN1/n"}), 0},
		{"bay-tobiano", withLoci(bayBase, Genotype{LocusTobiano: "To/n"}), 0},
		{"blue-roan", withLoci(blackBase, Genotype{LocusRoan: "Rn/n"}), 0},
		{"palomino-roan", withLoci(chestnutBase, Genotype{LocusCream: "Cr/n", LocusRoan: "Rn/n"}), 0},
		{"bay-gray-age3", withLoci(bayBase, Genotype{LocusGray: "G/n"}), 3},
		{"bay-gray-age8", withLoci(bayBase, Genotype{LocusGray: "G/n"}), 8},
		{"chestnut-gray-age16", withLoci(chestnutBase, Genotype{LocusGray: "G/n"}), 16},
	}

	profile := &BreedProfile{}
	var buf bytes.Buffer
	for _, row := range rows {
		a, err := parseActive(row.g)
		if err != nil {
			t.Fatalf("%s: %v", row.label, err)
		}
		base := resolveBasePigment(a)
		ov := applyOverlays(base, resolveDilutions(base, a), a, profile, row.age)
		fmt.Fprintf(&buf, "%s: %s\n", row.label, ov.name)
	}

	goldie.New(t).Assert(t, "naming_table", buf.Bytes())
}
