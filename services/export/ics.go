package exportsvc

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"

	"github.com/earseneau1/course-scheduler/core/schedule"
)

var rruleWeekdays = map[schedule.Day]rrule.Weekday{
	schedule.Monday:    rrule.MO,
	schedule.Tuesday:   rrule.TU,
	schedule.Wednesday: rrule.WE,
	schedule.Thursday:  rrule.TH,
	schedule.Friday:    rrule.FR,
	schedule.Saturday:  rrule.SA,
}

// ICS renders all master sessions as weekly recurring VEVENTs anchored on
// the week beginning at weekStart (a Monday). A master's recurrence covers
// every day its repeat group occupies, so an MWF class serializes as one
// event with BYDAY=MO,WE,FR rather than three.
func (e *Exporter) ICS(sessions []schedule.Session, weekStart time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//course-scheduler//weekly schedule//EN")

	now := time.Now().UTC()
	for _, master := range masters(sessions) {
		byDay := make([]rrule.Weekday, 0, 3)
		for _, d := range groupDays(master, sessions) {
			byDay = append(byDay, rruleWeekdays[d])
		}
		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: byDay,
		})
		if err != nil {
			return "", errors.Wrapf(err, "building recurrence for session %s", master.ID)
		}

		start := e.sessionStart(master, weekStart)
		ev := cal.AddEvent(master.ID)
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Duration(master.Duration) * time.Minute))
		ev.SetSummary(e.summary(master))
		if loc := e.location(master); loc != "" {
			ev.SetLocation(loc)
		}
		ev.AddRrule(r.String())
	}
	return cal.Serialize(), nil
}
