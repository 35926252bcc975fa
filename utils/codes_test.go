package utils

import (
	"strings"
	"testing"
)

func TestGenerateConfirmationCode(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		code, err := GenerateConfirmationCode(ConfirmationCodeLength)
		if err != nil {
			t.Fatalf("GenerateConfirmationCode: %v", err)
		}
		if len(code) != ConfirmationCodeLength {
			t.Fatalf("len = %d, want %d", len(code), ConfirmationCodeLength)
		}
		for i := 0; i < len(code); i++ {
			if !strings.ContainsRune(confirmationAlphabet, rune(code[i])) {
				t.Fatalf("code %q contains invalid character %q", code, code[i])
			}
		}
	})

	t.Run("no repeats over many draws", func(t *testing.T) {
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			code, err := GenerateConfirmationCode(ConfirmationCodeLength)
			if err != nil {
				t.Fatalf("GenerateConfirmationCode: %v", err)
			}
			if seen[code] {
				t.Fatalf("duplicate code %q after %d draws", code, i)
			}
			seen[code] = true
		}
	})

	t.Run("invalid length", func(t *testing.T) {
		if _, err := GenerateConfirmationCode(0); err == nil {
			t.Fatal("expected error for zero length")
		}
		if _, err := GenerateConfirmationCode(-3); err == nil {
			t.Fatal("expected error for negative length")
		}
	})
}

func TestIsValidConfirmationCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"ABC123XYZ9", true},
		{"abc123xyz9", false},
		{"ABC123XYZ", false},
		{"ABC123XYZ99", false},
		{"ABC 23XYZ9", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidConfirmationCode(tc.code); got != tc.want {
			t.Errorf("IsValidConfirmationCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
