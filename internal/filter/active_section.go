package filter

// SectionPosition is a section's rendered top edge in page coordinates,
// reported by the client on scroll.
type SectionPosition struct {
	ID  string `json:"id"`
	Top int    `json:"top"`
}

// ActiveSection derives the section to highlight as "currently in view": the
// one whose top edge is nearest above scrollY+threshold. This is presentation
// state only and never feeds back into filtering. Returns "" when no section
// has been scrolled past yet.
func ActiveSection(positions []SectionPosition, scrollY, threshold int) string {
	line := scrollY + threshold

	active := ""
	best := 0
	for _, p := range positions {
		if p.Top <= line && (active == "" || p.Top >= best) {
			active = p.ID
			best = p.Top
		}
	}
	return active
}
