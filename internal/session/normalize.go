package session

import (
	"strings"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

// NormalizeIndianMobile reduces raw input to a bare 10-digit mobile number.
// Accepted forms: 10 digits, 91-prefixed 12 digits (with or without "+"),
// 0-prefixed 11 digits. Anything else is ErrInvalidFormat.
func NormalizeIndianMobile(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10:
		return d, nil
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		return d[2:], nil
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		return d[1:], nil
	}

	return "", domain.ErrInvalidFormat
}
