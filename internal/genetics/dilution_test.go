package genetics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	chestnutBase = Genotype{LocusExtension: "e/e"}
	bayBase      = Genotype{LocusExtension: "E/e", LocusAgouti: "A/A"}
	blackBase    = Genotype{LocusExtension: "E/E", LocusAgouti: "a/a"}
)

func withLoci(base Genotype, extra Genotype) Genotype {
	g := make(Genotype, len(base)+len(extra))
	for k, v := range base {
		g[k] = v
	}
	for k, v := range extra {
		g[k] = v
	}
	return g
}

func dilutedName(t *testing.T, g Genotype) string {
	t.Helper()
	a, err := parseActive(g)
	require.NoError(t, err)
	base := resolveBasePigment(a)
	return resolveDilutions(base, a)
}

func TestDilutionCascadeNames(t *testing.T) {
	cases := []struct {
		name string
		g    Genotype
		want string
	}{
		{"chestnut plain", chestnutBase, "Chestnut"},
		{"bay plain", bayBase, "Bay"},
		{"black plain", blackBase, "Black"},

		{"palomino", withLoci(chestnutBase, Genotype{LocusCream: "Cr/n"}), "Palomino"},
		{"buckskin", withLoci(bayBase, Genotype{LocusCream: "Cr/n"}), "Buckskin"},
		{"smoky black", withLoci(blackBase, Genotype{LocusCream: "Cr/n"}), "Smoky Black"},
		{"cremello", withLoci(chestnutBase, Genotype{LocusCream: "Cr/Cr"}), "Cremello"},
		{"perlino", withLoci(bayBase, Genotype{LocusCream: "Cr/Cr"}), "Perlino"},
		{"smoky cream", withLoci(blackBase, Genotype{LocusCream: "Cr/Cr"}), "Smoky Cream"},

		{"red dun", withLoci(chestnutBase, Genotype{LocusDun: "D/n"}), "Red Dun"},
		{"bay dun", withLoci(bayBase, Genotype{LocusDun: "D/D"}), "Bay Dun"},
		{"grulla", withLoci(blackBase, Genotype{LocusDun: "D/n"}), "Grulla"},

		{"palomino dun", withLoci(chestnutBase, Genotype{LocusCream: "Cr/n", LocusDun: "D/n"}), "Palomino Dun"},
		{"buckskin dun", withLoci(bayBase, Genotype{LocusCream: "Cr/n", LocusDun: "D/n"}), "Buckskin Dun"},
		{"smoky grulla", withLoci(blackBase, Genotype{LocusCream: "Cr/n", LocusDun: "D/n"}), "Smoky Grulla"},
		{"double cream hides dun", withLoci(bayBase, Genotype{LocusCream: "Cr/Cr", LocusDun: "D/n"}), "Perlino"},

		{"gold champagne", withLoci(chestnutBase, Genotype{LocusChampagne: "Ch/n"}), "Gold Champagne"},
		{"amber champagne", withLoci(bayBase, Genotype{LocusChampagne: "Ch/Ch"}), "Amber Champagne"},
		{"classic champagne", withLoci(blackBase, Genotype{LocusChampagne: "Ch/n"}), "Classic Champagne"},
		{"amber cream champagne", withLoci(bayBase, Genotype{LocusChampagne: "Ch/n", LocusCream: "Cr/n"}), "Amber Cream Champagne"},
		{"classic champagne dun", withLoci(blackBase, Genotype{LocusChampagne: "Ch/n", LocusDun: "D/n"}), "Classic Champagne Dun"},
		{"gold cream champagne dun", withLoci(chestnutBase, Genotype{LocusChampagne: "Ch/n", LocusCream: "Cr/n", LocusDun: "D/n"}), "Gold Cream Champagne Dun"},
		{"amber ivory champagne", withLoci(bayBase, Genotype{LocusChampagne: "Ch/n", LocusCream: "Cr/Cr"}), "Amber Ivory Champagne"},

		{"silver bay", withLoci(bayBase, Genotype{LocusSilver: "Z/n"}), "Silver Bay"},
		{"silver dapple", withLoci(blackBase, Genotype{LocusSilver: "Z/n"}), "Silver Dapple"},
		{"silver grulla", withLoci(blackBase, Genotype{LocusSilver: "Z/n", LocusDun: "D/n"}), "Silver Grulla"},
		{"silver has no red effect", withLoci(chestnutBase, Genotype{LocusSilver: "Z/Z"}), "Chestnut"},

		{"apricot", withLoci(chestnutBase, Genotype{LocusPearl: "Prl/Prl"}), "Apricot"},
		{"pearl hidden on black", withLoci(blackBase, Genotype{LocusPearl: "Prl/Prl"}), "Black"},
		{"palomino pearl", withLoci(chestnutBase, Genotype{LocusCream: "Cr/n", LocusPearl: "Prl/n"}), "Palomino Pearl"},
		{"buckskin pearl", withLoci(bayBase, Genotype{LocusCream: "Cr/n", LocusPearl: "Prl/n"}), "Buckskin Pearl"},
		{"single pearl silent", withLoci(chestnutBase, Genotype{LocusPearl: "Prl/n"}), "Chestnut"},

		{"mushroom chestnut", withLoci(chestnutBase, Genotype{LocusMushroom: "Mu/Mu"}), "Mushroom Chestnut"},
		{"mushroom needs red base", withLoci(bayBase, Genotype{LocusMushroom: "Mu/Mu"}), "Bay"},
		{"cream outranks mushroom", withLoci(chestnutBase, Genotype{LocusMushroom: "Mu/Mu", LocusCream: "Cr/n"}), "Palomino"},
		{"mushroom het silent", withLoci(chestnutBase, Genotype{LocusMushroom: "Mu/n"}), "Chestnut"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, dilutedName(t, tc.g))
		})
	}
}
