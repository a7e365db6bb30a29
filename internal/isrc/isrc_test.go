package isrc

import "testing"

// --- WithoutDashes ---

func TestWithoutDashes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dashed", "GB-UM7-15-05078", "GBUM71505078"},
		{"undashed passthrough", "GBUM71505078", "GBUM71505078"},
		{"lowercase folded", "gb-um7-15-05078", "GBUM71505078"},
		{"whitespace trimmed", "  GBUM71505078  ", "GBUM71505078"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithoutDashes(tt.in); got != tt.want {
				t.Errorf("WithoutDashes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- WithDashes ---

func TestWithDashes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"undashed", "GBUM71505078", "GB-UM7-15-05078"},
		{"already dashed", "GB-UM7-15-05078", "GB-UM7-15-05078"},
		{"lowercase", "gbum71505078", "GB-UM7-15-05078"},
		{"wrong length unchanged", "abc", "abc"},
		{"empty unchanged", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithDashes(tt.in); got != tt.want {
				t.Errorf("WithDashes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- Valid ---

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical", "USJI10400661", true},
		{"dashed", "US-JI1-04-00661", true},
		{"lowercase", "usji10400661", true},
		{"registrant with digits", "GBAHS1700214", true},
		{"too short", "USJI104", false},
		{"too long", "USJI104006611", false},
		{"letters in year", "USJI1AB00661", false},
		{"digits in country", "1SJI10400661", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.in); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// --- Normalize ---

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical passthrough", "USJI10400661", "USJI10400661"},
		{"dashed canonicalized", "GB-UM7-15-05078", "GBUM71505078"},
		{"lowercase canonicalized", "usug11902642", "USUG11902642"},
		{"malformed treated as absent", "not-an-isrc", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- Dashed ---

func TestDashed(t *testing.T) {
	if !Dashed("GB-UM7-15-05078") {
		t.Error("Dashed should report true for a dashed code")
	}
	if Dashed("GBUM71505078") {
		t.Error("Dashed should report false for an undashed code")
	}
}

// --- Round trips ---

func TestDashRoundTrip(t *testing.T) {
	code := "USUG11902642"
	if got := WithoutDashes(WithDashes(code)); got != code {
		t.Errorf("round trip = %q, want %q", got, code)
	}
}
