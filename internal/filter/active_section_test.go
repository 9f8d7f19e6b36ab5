package filter

import "testing"

func TestActiveSection(t *testing.T) {
	positions := []SectionPosition{
		{ID: "momos", Top: 0},
		{ID: "pizza", Top: 400},
		{ID: "mains", Top: 900},
	}

	tests := []struct {
		name      string
		scrollY   int
		threshold int
		want      string
	}{
		{"top of page", 0, 120, "momos"},
		{"just before pizza", 250, 120, "momos"},
		{"pizza crosses the line", 300, 120, "pizza"},
		{"deep scroll", 1500, 120, "mains"},
		{"top edge exactly on the line", 780, 120, "mains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveSection(positions, tt.scrollY, tt.threshold)
			if got != tt.want {
				t.Errorf("ActiveSection(scrollY=%d) = %q, want %q", tt.scrollY, got, tt.want)
			}
		})
	}
}

func TestActiveSection_Empty(t *testing.T) {
	if got := ActiveSection(nil, 100, 120); got != "" {
		t.Errorf("ActiveSection(nil) = %q, want empty", got)
	}

	positions := []SectionPosition{{ID: "momos", Top: 500}}
	if got := ActiveSection(positions, 0, 120); got != "" {
		t.Errorf("ActiveSection above all sections = %q, want empty", got)
	}
}
