package exportsvc

import (
	"fmt"
	"time"

	"github.com/earseneau1/course-scheduler/core"
	"github.com/earseneau1/course-scheduler/core/directory"
	"github.com/earseneau1/course-scheduler/core/schedule"
)

// Exporter renders the weekly schedule to interchange formats (ICS, XLSX).
// Directory lookups are optional; without them sessions are labeled
// generically.
type Exporter struct {
	grid core.GridConfig
	fmt  schedule.Grid
	dir  *directory.Service
}

func NewExporter(conf *core.Config, dir *directory.Service) *Exporter {
	return &Exporter{
		grid: conf.Grid,
		fmt:  schedule.NewGrid(conf.Grid),
		dir:  dir,
	}
}

// dayOffsets maps grid days onto offsets from a Monday week start.
var dayOffsets = map[schedule.Day]int{
	schedule.Monday:    0,
	schedule.Tuesday:   1,
	schedule.Wednesday: 2,
	schedule.Thursday:  3,
	schedule.Friday:    4,
	schedule.Saturday:  5,
}

// sessionStart places a session's first occurrence in the week beginning at
// weekStart (assumed to be a Monday).
func (e *Exporter) sessionStart(s schedule.Session, weekStart time.Time) time.Time {
	day := weekStart.AddDate(0, 0, dayOffsets[s.Day])
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		e.grid.StartHour, 0, 0, 0, weekStart.Location(),
	).Add(time.Duration(s.StartTime) * time.Minute)
}

// summary labels a session from its class/professor references when the
// directory is available.
func (e *Exporter) summary(s schedule.Session) string {
	if e.dir != nil && s.ClassRef.Valid {
		if classes, err := e.dir.QueryClasses(); err == nil {
			for _, c := range classes {
				if c.ID == s.ClassRef.Int {
					return fmt.Sprintf("%s (%s)", c.Name, c.Code)
				}
			}
		}
	}
	return "Class session"
}

func (e *Exporter) location(s schedule.Session) string {
	if e.dir == nil || !s.RoomRef.Valid {
		return ""
	}
	rooms, err := e.dir.QueryRooms()
	if err != nil {
		return ""
	}
	for _, r := range rooms {
		if r.ID == s.RoomRef.Int {
			return fmt.Sprintf("%s, %s", r.Name, r.Building)
		}
	}
	return ""
}

// groupDays collects the weekday set a master's group occupies, master day
// included, in grid order.
func groupDays(master schedule.Session, all []schedule.Session) []schedule.Day {
	occupied := map[schedule.Day]bool{master.Day: true}
	if master.RepeatGroupID.Valid {
		for _, s := range all {
			if s.IsRepeat && s.RepeatGroupID == master.RepeatGroupID {
				occupied[s.Day] = true
			}
		}
	}
	var days []schedule.Day
	for _, d := range schedule.Days {
		if occupied[d] {
			days = append(days, d)
		}
	}
	return days
}

func masters(all []schedule.Session) []schedule.Session {
	var ms []schedule.Session
	for _, s := range all {
		if !s.IsRepeat {
			ms = append(ms, s)
		}
	}
	return ms
}
