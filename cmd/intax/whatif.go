package main

import (
	"strings"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/transform"
	"github.com/spf13/cobra"
)

var transformRegistry = transform.NewTransformRegistry()

// applyWhatIfs applies the semicolon-separated --what-if transforms to profile
func applyWhatIfs(cmd *cobra.Command, profile domain.Profile) (domain.Profile, error) {
	raw, _ := cmd.Flags().GetString("what-if")
	var specs []string
	for _, s := range strings.Split(raw, ";") {
		if s = strings.TrimSpace(s); s != "" {
			specs = append(specs, s)
		}
	}
	if len(specs) == 0 {
		return profile, nil
	}

	transforms, err := transformRegistry.ParseTransformSpecs(specs)
	if err != nil {
		return profile, err
	}
	for _, t := range transforms {
		cmd.PrintErrf("What-if: %s\n", t.Description())
	}
	return transform.ApplyTransforms(profile, transforms)
}

func whatIfUsage() string {
	return "Semicolon-separated profile edits, e.g. \"raise_salary:pct=10;set_regime:name=new-fy2024-25\" (available: " +
		strings.Join(transformRegistry.List(), ", ") + ")"
}
