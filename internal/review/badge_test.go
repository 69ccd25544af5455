package review

import "testing"

func TestTier(t *testing.T) {
	tests := []struct {
		name       string
		want       ConfidenceTier
		wantLabel  string
		confidence float64
	}{
		{name: "well above high cutoff", confidence: 0.92, want: TierHigh, wantLabel: "high confidence"},
		{name: "exactly 0.8 is high", confidence: 0.8, want: TierHigh, wantLabel: "high confidence"},
		{name: "just below high cutoff", confidence: 0.79, want: TierMedium, wantLabel: "medium confidence"},
		{name: "exactly 0.5 is medium", confidence: 0.5, want: TierMedium, wantLabel: "medium confidence"},
		{name: "just below medium cutoff", confidence: 0.49, want: TierLow, wantLabel: "low confidence"},
		{name: "zero", confidence: 0, want: TierLow, wantLabel: "low confidence"},
		{name: "full confidence", confidence: 1.0, want: TierHigh, wantLabel: "high confidence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tier(tt.confidence)
			if got != tt.want {
				t.Errorf("Tier(%v) = %v, want %v", tt.confidence, got, tt.want)
			}
			if got.Label() != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got.Label(), tt.wantLabel)
			}
		})
	}
}
