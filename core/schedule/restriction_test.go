package schedule

import "testing"

func TestRestrictionPolicy(t *testing.T) {
	p := NewRestrictionPolicy(testGridConfig())

	if got := p.Threshold(); got != 60 {
		t.Fatalf("Threshold() = %d, want 60", got)
	}

	tests := []struct {
		name       string
		day        Day
		minutes    int
		allows     bool
		clamped    int
		restricted bool
	}{
		{name: "monday early", day: Monday, minutes: 0, allows: true, clamped: 0},
		{name: "tuesday early", day: Tuesday, minutes: 30, allows: true, clamped: 30},
		{name: "wednesday before threshold", day: Wednesday, minutes: 30, allows: false, clamped: 60, restricted: true},
		{name: "wednesday at threshold", day: Wednesday, minutes: 60, allows: true, clamped: 60, restricted: true},
		{name: "thursday before threshold", day: Thursday, minutes: 59, allows: false, clamped: 60, restricted: true},
		{name: "friday after threshold", day: Friday, minutes: 120, allows: true, clamped: 120, restricted: true},
		{name: "saturday early", day: Saturday, minutes: 0, allows: true, clamped: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Restricted(tt.day); got != tt.restricted {
				t.Errorf("Restricted(%s) = %v, want %v", tt.day, got, tt.restricted)
			}
			if got := p.Allows(tt.day, tt.minutes); got != tt.allows {
				t.Errorf("Allows(%s, %d) = %v, want %v", tt.day, tt.minutes, got, tt.allows)
			}
			if got := p.Clamp(tt.day, tt.minutes); got != tt.clamped {
				t.Errorf("Clamp(%s, %d) = %d, want %d", tt.day, tt.minutes, got, tt.clamped)
			}
		})
	}
}
