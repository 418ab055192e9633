package cli

import (
	"fmt"
	"strings"

	"github.com/xtding233/equus-backend/internal/genetics"
)

// parseGenotypeFlags turns repeated --locus key=pair flags into a Genotype.
// Example: --locus E_Extension=E/e --locus A_Agouti=a/a
func parseGenotypeFlags(pairs []string) (genetics.Genotype, error) {
	g := make(genetics.Genotype, len(pairs))
	for _, raw := range pairs {
		key, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --locus %q: want key=pair, e.g. E_Extension=E/e", raw)
		}
		g[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	if err := genetics.Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}
