package testutil

import (
	"github.com/earseneau1/course-scheduler/core"
)

// NewConfig returns the calendar configuration the tests run against: an
// 8 AM to 6 PM grid with Wednesday through Friday restricted before 9 AM.
func NewConfig() *core.Config {
	conf := &core.Config{TestMode: true}
	conf.Grid = core.GridConfig{
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
	return conf
}

// NopLogger discards everything; tests assert on behavior, not log output.
type NopLogger struct{}

func (NopLogger) Enable(bool)                  {}
func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}

// CaptureFeedback records notifications as "severity: message" strings.
type CaptureFeedback struct {
	Messages []string
}

func (f *CaptureFeedback) Notify(severity, message string) {
	f.Messages = append(f.Messages, severity+": "+message)
}
