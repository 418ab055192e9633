package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xtding233/equus-backend/internal/breed"
	"github.com/xtding233/equus-backend/internal/sim"
)

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		breedName string
		ageYears  int
		loci      []string
		trials    int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate the outcome distribution for a genotype",
		Long: `Resolve the same genotype many times with a seeded source and print
outcome frequencies. Useful when tuning a breed's bias tables.`,
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

			rep, err := sim.Run(sim.Params{
				Genotype: genotype,
				Profile:  profile,
				AgeYears: ageYears,
				Trials:   trials,
				Seed:     seed,
			})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(cmd, rep)
			return nil
		},
	}

	cmd.Flags().StringVar(&breedName, "breed", "", "breed profile name (required)")
	cmd.Flags().IntVar(&ageYears, "age", 0, "horse age in years")
	cmd.Flags().StringArrayVar(&loci, "locus", nil, "locus pair, repeatable: --locus E_Extension=E/e")
	cmd.Flags().IntVar(&trials, "trials", 10000, "number of resolutions to run")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the simulation source")
	_ = cmd.MarkFlagRequired("breed")

	return cmd
}

func printReport(cmd *cobra.Command, rep sim.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "trials: %d\n", rep.Trials)
	printFreq(cmd, "colors", rep.Colors)
	printFreq(cmd, "shades", rep.Shades)
	printFreq(cmd, "faces", rep.Faces)
	fmt.Fprintf(out, "legs marked: mean=%.3f p90=%.0f\n", rep.LegsMarked.Mean, rep.LegsMarked.P90)
}

func printFreq(cmd *cobra.Command, label string, freq map[string]float64) {
	if len(freq) == 0 {
		return
	}
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return freq[keys[i]] > freq[keys[j]] })
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", label)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-32s %6.2f%%\n", k, freq[k]*100)
	}
}
