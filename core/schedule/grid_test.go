package schedule

import (
	"math"
	"testing"

	"github.com/earseneau1/course-scheduler/core"
)

func testGridConfig() core.GridConfig {
	return core.GridConfig{
		StartHour:       8,
		EndHour:         18,
		HourHeight:      100,
		DefaultDuration: 80,
		PresetDurations: []int{50, 80},
		MinDuration:     30,
		SnapQuantum:     30,
		RestrictedDays:  []string{"Wednesday", "Thursday", "Friday"},
		RestrictionHour: 9,
	}
}

func TestGrid_SnapToQuantum(t *testing.T) {
	g := NewGrid(testGridConfig())

	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{name: "default duration passes through", minutes: 80, want: 80},
		{name: "preset passes through", minutes: 50, want: 50},
		{name: "just above default rounds up", minutes: 81, want: 90},
		{name: "just below default rounds to quantum", minutes: 79, want: 90},
		{name: "rounds down", minutes: 65, want: 60},
		{name: "rounds up", minutes: 75, want: 90},
		{name: "already on quantum", minutes: 120, want: 120},
		{name: "zero", minutes: 0, want: 0},
		{name: "below half quantum", minutes: 14, want: 0},
		{name: "half quantum rounds away", minutes: 45, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.SnapToQuantum(tt.minutes); got != tt.want {
				t.Errorf("SnapToQuantum(%d) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestGrid_offsets(t *testing.T) {
	g := NewGrid(testGridConfig())

	if got := g.MinutesToOffset(60); got != 100 {
		t.Errorf("MinutesToOffset(60) = %v, want 100", got)
	}
	if got := g.OffsetToMinutes(100); got != 60 {
		t.Errorf("OffsetToMinutes(100) = %v, want 60", got)
	}
	// conversions round-trip to float precision; consumers round to whole
	// minutes before use
	for _, minutes := range []int{0, 73, 85, 599} {
		got := g.OffsetToMinutes(g.MinutesToOffset(float64(minutes)))
		if int(math.Round(got)) != minutes {
			t.Errorf("round-trip(%d) = %v, want %d", minutes, got, minutes)
		}
	}
	if got := g.Span(); got != 600 {
		t.Errorf("Span() = %d, want 600", got)
	}
}

func TestGrid_FormatClockTime(t *testing.T) {
	g := NewGrid(testGridConfig())

	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 0, want: "8:00 AM"},
		{minutes: 60, want: "9:00 AM"},
		{minutes: 65, want: "9:05 AM"},
		{minutes: 240, want: "12:00 PM"},
		{minutes: 250, want: "12:10 PM"},
		{minutes: 300, want: "1:00 PM"},
		{minutes: 599, want: "5:59 PM"},
	}
	for _, tt := range tests {
		if got := g.FormatClockTime(tt.minutes); got != tt.want {
			t.Errorf("FormatClockTime(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestGrid_IsPreset(t *testing.T) {
	g := NewGrid(testGridConfig())

	for minutes, want := range map[int]bool{50: true, 80: true, 60: false, 0: false} {
		if got := g.IsPreset(minutes); got != want {
			t.Errorf("IsPreset(%d) = %v, want %v", minutes, got, want)
		}
	}
}
