package convert

import (
	"fmt"

	"bdd2yolo/logger"
)

// Console presentation of a conversion pass, kept apart from the pass
// itself so callers can render results differently.

// ReportMapping lists a split's category mapping.
func ReportMapping(split string, m *Mapping) {
	fmt.Printf("\nCategory mapping for the %s split:\n", split)
	for id, name := range m.Names() {
		fmt.Printf("  %s: %d\n", name, id)
	}
}

// Report prints a split's outcome: processed/missing counts, the missing
// image names (first 10, plus an overflow count) and per-category
// instance counts over the full mapping.
func Report(split string, res *Result, m *Mapping) {
	fmt.Printf("\nAfter processing the %s split:\n", split)
	fmt.Printf("Images processed and copied: %d\n", res.Processed)
	fmt.Printf("Label files created: %d\n", res.Processed)
	fmt.Printf("Missing images: %d\n", res.Missing)

	if res.Missing > 0 {
		logger.S().Warnf("%d %s images were not found", res.Missing, split)
		fmt.Printf("\nWarning: %d images were not found:\n", res.Missing)
		for i, name := range res.MissingImages {
			if i == 10 {
				fmt.Printf("  ... and %d more.\n", res.Missing-10)
				break
			}
			fmt.Printf("  %s\n", name)
		}
	}

	fmt.Printf("\nAll categories and instances in the %s split:\n", split)
	for _, name := range m.Names() {
		fmt.Printf("  %s: %d instances\n", name, res.Instances[name])
	}
}
