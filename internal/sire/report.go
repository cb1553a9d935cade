package sire

import (
	"fmt"
	"strings"
)

// reportDisplayCap bounds how many warnings/errors the text report lists.
// The full slices stay available through Errors and Warnings.
const reportDisplayCap = 20

// Report renders a human-readable summary of the last conversion pass.
func (c *Converter) Report() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "SIRE CONVERSION REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Rows processed:        %d\n", c.stats.Total)
	fmt.Fprintf(&b, "Valid records:         %d\n", c.stats.Valid)
	fmt.Fprintf(&b, "Colombians excluded:   %d\n", c.stats.Colombianos)
	fmt.Fprintf(&b, "Duplicates removed:    %d\n", c.stats.Duplicados)
	fmt.Fprintf(&b, "Fields inferred:       %d\n", c.stats.Inferidos)
	fmt.Fprintf(&b, "Rows skipped:          %d\n", c.stats.Skipped)

	writeCapped(&b, "WARNINGS:", c.warnings)
	writeCapped(&b, "ERRORS:", c.errors)

	fmt.Fprintln(&b)
	fmt.Fprint(&b, rule)
	return b.String()
}

func writeCapped(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, heading)
	for i, item := range items {
		if i == reportDisplayCap {
			fmt.Fprintf(b, "  ... and %d more\n", len(items)-reportDisplayCap)
			break
		}
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
