package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xtding233/equus-backend/internal/breed"
	"github.com/xtding233/equus-backend/internal/genetics"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		breedName string
		ageYears  int
		loci      []string
		seed      uint64
		seeded    bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one phenotype from a genotype",
		Long: `Resolve a genotype against a breed profile and print the phenotype.

By default the draw uses the crypto-backed source, so repeated runs differ.
Pass --seed for a reproducible draw.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			genotype, err := parseGenotypeFlags(loci)
			if err != nil {
				return err
			}

			registry := breed.NewRegistry(rootOpts.ConfigDir)
			profile, err := registry.Get(breedName)
			if err != nil {
				return err
			}

			var sel genetics.Selector
			if seeded {
				sel = genetics.NewWeightedSelector(genetics.NewSeededRNG(seed))
			}
			ph, err := genetics.NewResolver(sel).Resolve(genotype, profile, ageYears)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ph)
			}
			printPhenotype(cmd, ph)
			return nil
		},
	}

	cmd.Flags().StringVar(&breedName, "breed", "", "breed profile name (required)")
	cmd.Flags().IntVar(&ageYears, "age", 0, "horse age in years")
	cmd.Flags().StringArrayVar(&loci, "locus", nil, "locus pair, repeatable: --locus E_Extension=E/e")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible draw")
	_ = cmd.MarkFlagRequired("breed")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		seeded = cmd.Flags().Changed("seed")
	}

	return cmd
}

func printPhenotype(cmd *cobra.Command, ph genetics.Phenotype) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "color:  %s\n", ph.FinalDisplayColor)
	fmt.Fprintf(out, "shade:  %s\n", ph.DeterminedShade)
	fmt.Fprintf(out, "face:   %s\n", ph.Markings.Face)
	fmt.Fprintf(out, "legs:   %s\n", strings.Join(ph.Markings.Legs, ", "))
	var flags []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"mottling", ph.Markings.Mottling},
		{"striping", ph.Markings.Striping},
		{"snowflake", ph.Markings.Snowflake},
		{"frost", ph.Markings.Frost},
		{"bloody_shoulder", ph.Markings.BloodyShoulder},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if len(flags) > 0 {
		fmt.Fprintf(out, "flags:  %s\n", strings.Join(flags, ", "))
	}
}
