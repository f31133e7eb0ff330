package validation

import "testing"

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765-43210", "919876543210"},
		{"(987) 654-3210", "9876543210"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripNonDigits(tt.in); got != tt.want {
			t.Errorf("StripNonDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidRoll(t *testing.T) {
	tests := []struct {
		roll string
		want bool
	}{
		{"24155012345", true},
		{"24155-01234-5", true}, // separators are stripped before counting
		{"2415501234", false},   // 10 digits
		{"241550123456", false}, // 12 digits
		{"", false},
		{"abcdefghijk", false},
	}
	for _, tt := range tests {
		if got := ValidRoll(tt.roll); got != tt.want {
			t.Errorf("ValidRoll(%q) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"98765-43210", true},
		{"987654321", false},
		{"+91 9876543210", false}, // country code pushes it to 12 digits
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestStrictDigits(t *testing.T) {
	if !StrictDigits("24155012345", 11) {
		t.Error("expected 11 plain digits to pass")
	}
	if StrictDigits("24155-01234", 11) {
		t.Error("separators must fail the strict form")
	}
	if StrictDigits("24155012345", 10) {
		t.Error("wrong length must fail")
	}
	if StrictDigits("", 0) != true {
		t.Error("zero length accepts only the empty string")
	}
}

func TestBlank(t *testing.T) {
	if !Blank("") || !Blank("   ") || !Blank("\t\n") {
		t.Error("whitespace-only strings are blank")
	}
	if Blank(" x ") {
		t.Error("non-whitespace content is not blank")
	}
}
