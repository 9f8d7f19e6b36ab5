package filter

import (
	"regexp"
	"strings"
)

var inchMarker = regexp.MustCompile(`(\d+(?:\.\d+)?)"`)

// NormalizeVariantLabel rewrites variant labels for display and search only;
// the catalog keeps the raw label. Inch markers (`7"`) become "7 inches" and
// the literal size tokens Reg/Med/Large expand to their full words. Anything
// else passes through unchanged.
func NormalizeVariantLabel(label string) string {
	normalized := inchMarker.ReplaceAllString(label, "$1 inches")

	switch strings.ToLower(strings.TrimSpace(normalized)) {
	case "reg":
		return "Regular"
	case "med":
		return "Medium"
	case "large":
		return "Large"
	}

	return normalized
}
