package schedule

// repeatTolerance absorbs the minute or two that snapping can leave a
// duration off a round number.
const repeatTolerance = 2

// RepeatSpec describes one implied repeat session: the day it occupies and
// the pattern that produced it.
type RepeatSpec struct {
	Day     Day
	Pattern Pattern
}

func approxEqual(a, b, tolerance int) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// DeriveRepeats computes the canonical repeat set implied by a master's day
// and duration:
//
//	Monday  ~50min -> Wednesday + Friday (MWF)
//	Monday  ~80min -> Wednesday (MWF)
//	Tuesday ~80min -> Thursday (TR)
//
// Anything else implies no repeats.
func DeriveRepeats(masterDay Day, masterDuration int) []RepeatSpec {
	switch masterDay {
	case Monday:
		if approxEqual(masterDuration, 50, repeatTolerance) {
			return []RepeatSpec{
				{Day: Wednesday, Pattern: PatternMWF},
				{Day: Friday, Pattern: PatternMWF},
			}
		}
		if approxEqual(masterDuration, 80, repeatTolerance) {
			return []RepeatSpec{{Day: Wednesday, Pattern: PatternMWF}}
		}
	case Tuesday:
		if approxEqual(masterDuration, 80, repeatTolerance) {
			return []RepeatSpec{{Day: Thursday, Pattern: PatternTR}}
		}
	}
	return nil
}
