package session

import (
	"errors"
	"testing"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

func TestNormalizeIndianMobile(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"9876543210", "9876543210", false},
		{"+919876543210", "9876543210", false},
		{"919876543210", "9876543210", false},
		{"09876543210", "9876543210", false},
		{"98765 43210", "9876543210", false},
		{"+91 98765-43210", "9876543210", false},
		{"12345", "", true},
		{"", "", true},
		{"abcdefghij", "", true},
		{"123456789012345", "", true},
		// 12 digits without the 91 prefix is not a valid form
		{"129876543210", "", true},
		// 11 digits without the 0 prefix is not a valid form
		{"99876543210", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeIndianMobile(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrInvalidFormat) {
				t.Errorf("NormalizeIndianMobile(%q) error = %v, want ErrInvalidFormat", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeIndianMobile(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeIndianMobile(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
