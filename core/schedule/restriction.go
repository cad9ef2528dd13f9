package schedule

import "github.com/earseneau1/course-scheduler/core"

// RestrictionPolicy decides whether a day/time combination may host a
// session. Restricted days refuse placements before the threshold; the
// threshold is kept in grid-relative minutes.
type RestrictionPolicy struct {
	restricted map[Day]bool
	threshold  int
}

func NewRestrictionPolicy(conf core.GridConfig) RestrictionPolicy {
	restricted := make(map[Day]bool, len(conf.RestrictedDays))
	for _, name := range conf.RestrictedDays {
		if d, err := ParseDay(name); err == nil {
			restricted[d] = true
		}
	}
	return RestrictionPolicy{
		restricted: restricted,
		threshold:  (conf.RestrictionHour - conf.StartHour) * 60,
	}
}

// Threshold returns the earliest allowed start on restricted days, in grid
// minutes.
func (p RestrictionPolicy) Threshold() int { return p.threshold }

// Restricted reports whether day belongs to the restricted set.
func (p RestrictionPolicy) Restricted(day Day) bool { return p.restricted[day] }

// Allows reports whether a session may start at the given grid minutes on
// day. Creation gates on this; drags clamp instead (see Clamp).
func (p RestrictionPolicy) Allows(day Day, minutes int) bool {
	return !p.restricted[day] || minutes >= p.threshold
}

// Clamp pulls a start time on a restricted day up to the threshold. Used when
// finalizing a drag so the session is moved, not rejected.
func (p RestrictionPolicy) Clamp(day Day, minutes int) int {
	if p.restricted[day] && minutes < p.threshold {
		return p.threshold
	}
	return minutes
}
