package validation

import (
	"regexp"
	"strings"
)

// Validation rule constants
var (
	// Roll numbers carry exactly 11 decimal digits.
	RollDigits = 11

	// Phone numbers carry exactly 10 decimal digits.
	PhoneDigits = 10

	// Year domain for a student record.
	YearMin = 1
	YearMax = 4
)

var nonDigits = regexp.MustCompile(`\D`)

// StripNonDigits removes every non-digit character from s. Bulk import
// applies this before checking digit counts, so "+91 98765-43210" and
// "9876543210" validate the same way.
func StripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidRoll reports whether roll is exactly RollDigits decimal digits
// after stripping separators.
func ValidRoll(roll string) bool {
	return len(StripNonDigits(roll)) == RollDigits
}

// ValidPhone reports whether phone is exactly PhoneDigits decimal digits
// after stripping separators.
func ValidPhone(phone string) bool {
	return len(StripNonDigits(phone)) == PhoneDigits
}

// StrictDigits reports whether s consists only of decimal digits of the
// given length, with no separators at all. Manual entry uses the strict
// form; bulk import uses the stripping form above.
func StrictDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	return StripNonDigits(s) == s
}

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
