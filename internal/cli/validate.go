package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/equus-backend/internal/breed"
)

// ValidationResult holds per-breed validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Breeds map[string]string `json:"breeds"` // breed -> "ok" or the problem
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate every breed profile in the config directory",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := breed.NewRegistry(rootOpts.ConfigDir)
			names, err := registry.Breeds()
			if err != nil {
				return err
			}

			result := ValidationResult{Valid: true, Breeds: make(map[string]string, len(names))}
			for _, name := range names {
				if _, err := registry.Get(name); err != nil {
					result.Valid = false
					result.Breeds[name] = err.Error()
					continue
				}
				result.Breeds[name] = "ok"
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, result.Breeds[name])
				}
			}

			if !result.Valid {
				return fmt.Errorf("%d breed profile(s) failed validation", countInvalid(result))
			}
			return nil
		},
	}
	return cmd
}

func countInvalid(r ValidationResult) int {
	n := 0
	for _, v := range r.Breeds {
		if v != "ok" {
			n++
		}
	}
	return n
}
