package domain

import "testing"

func TestSeverityPenalizing(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityInfo, false},
		{SeverityNotice, false},
		{SeverityWarning, true},
		{SeverityError, true},
	}
	for _, tt := range tests {
		if got := tt.severity.Penalizing(); got != tt.want {
			t.Errorf("%s.Penalizing() = %v, want %v", tt.severity, got, tt.want)
		}
	}
}
