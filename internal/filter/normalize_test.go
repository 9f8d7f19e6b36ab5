package filter

import "testing"

func TestNormalizeVariantLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{`7"`, "7 inches"},
		{`10"`, "10 inches"},
		{`12.5"`, "12.5 inches"},
		{"Reg", "Regular"},
		{"reg", "Regular"},
		{"REG", "Regular"},
		{"Med", "Medium"},
		{"Large", "Large"},
		{"large", "Large"},
		{"Half (5 pcs)", "Half (5 pcs)"},
		{"Full", "Full"},
		{"", ""},
	}

	for _, tt := range tests {
		got := NormalizeVariantLabel(tt.label)
		if got != tt.want {
			t.Errorf("NormalizeVariantLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
