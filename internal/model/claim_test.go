package model

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"verified", StatusVerified},
		{"contradicted", StatusContradicted},
		{"inconclusive", StatusInconclusive},
		{"error", StatusInconclusive}, // the capability may not produce error itself
		{"", StatusInconclusive},
		{"VERIFIED", StatusInconclusive},
		{"probably_true", StatusInconclusive},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
