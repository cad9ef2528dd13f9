package schedule

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/earseneau1/course-scheduler/core"
)

// DragMode distinguishes the three drag gestures a master session accepts.
type DragMode int

const (
	DragMove DragMode = iota
	DragResizeTop
	DragResizeBottom
)

func (m DragMode) String() string {
	switch m {
	case DragMove:
		return "move"
	case DragResizeTop:
		return "resize-top"
	case DragResizeBottom:
		return "resize-bottom"
	}
	return "unknown"
}

// dragState is the anchor captured at press time. It is immutable for the
// life of the gesture; every move recomputes from it rather than mutating
// accumulated state.
type dragState struct {
	sessionID      string
	mode           DragMode
	anchorY        float64
	anchorStart    int
	anchorDuration int
}

// gridPress remembers a press on empty grid space so a release with no
// intervening move can become a click-to-create.
type gridPress struct {
	day   Day
	y     float64
	moved bool
}

// Controller is the gesture state machine. It consumes raw pointer events
// (press, move, release) and drives the grid math, restriction policy and
// session service to implement the create, move and resize gestures. It is
// a single-actor component: one pointer, no overlapping gestures.
type Controller struct {
	svc      *Service
	grid     Grid
	policy   RestrictionPolicy
	logger   core.Logger
	feedback core.Feedback

	drag  *dragState
	press *gridPress
}

func NewController(svc *Service, logger core.Logger, feedback core.Feedback) *Controller {
	return &Controller{
		svc:      svc,
		grid:     svc.Grid(),
		policy:   svc.Policy(),
		logger:   logger,
		feedback: feedback,
	}
}

// Idle reports whether no gesture is in progress.
func (c *Controller) Idle() bool {
	return c.drag == nil && c.press == nil
}

// PressSession begins a drag gesture on a session at pointer offset y.
// Repeat members have no drag affordance; pressing one is ignored. A press
// while another gesture is in progress is ignored too.
func (c *Controller) PressSession(id string, mode DragMode, y float64) error {
	if !c.Idle() {
		return nil
	}
	sess, err := c.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			c.logger.Warn(fmt.Sprintf("press on missing session %s", id), err)
			return nil
		}
		return err
	}
	if sess.IsRepeat {
		c.logger.Debug(fmt.Sprintf("ignoring %s press on repeat session %s", mode, id))
		return nil
	}
	c.drag = &dragState{
		sessionID:      id,
		mode:           mode,
		anchorY:        y,
		anchorStart:    sess.StartTime,
		anchorDuration: sess.Duration,
	}
	return nil
}

// PressGrid begins a potential click-to-create on empty grid space.
func (c *Controller) PressGrid(day Day, y float64) {
	if !c.Idle() {
		return
	}
	c.press = &gridPress{day: day, y: y}
}

// Move advances an active gesture to pointer offset y. Intermediate updates
// are raw and unsnapped; repeat members track the master visually via Sync.
func (c *Controller) Move(y float64) error {
	if c.press != nil {
		c.press.moved = true
		return nil
	}
	if c.drag == nil {
		return nil
	}

	delta := int(math.Round(c.grid.OffsetToMinutes(y - c.drag.anchorY)))
	span := c.grid.Span()
	minDur := c.grid.MinDuration()

	var start, duration int
	switch c.drag.mode {
	case DragMove:
		duration = c.drag.anchorDuration
		start = clamp(c.drag.anchorStart+delta, 0, span-duration)
	case DragResizeTop:
		bottom := c.drag.anchorStart + c.drag.anchorDuration
		start = clamp(c.drag.anchorStart+delta, 0, bottom-minDur)
		duration = bottom - start
	case DragResizeBottom:
		start = c.drag.anchorStart
		duration = clamp(c.drag.anchorDuration+delta, minDur, span-start)
	}

	if _, err := c.svc.UpdateMasterSchedule(c.drag.sessionID, &start, &duration); err != nil {
		return c.abort("updating dragged session", err)
	}
	if err := c.svc.Sync(c.drag.sessionID); err != nil {
		return c.abort("syncing dragged session", err)
	}
	return nil
}

// Release ends the gesture. A drag finalizes: both edited values snap to the
// grid quantum, the restriction clamp applies, and resize gestures force the
// repeat set to be recreated since a duration change can switch patterns. A
// grid press with no intervening move creates a new master with the default
// duration, gated hard by the restriction policy.
func (c *Controller) Release(y float64) error {
	switch {
	case c.drag != nil:
		drag := c.drag
		c.drag = nil
		opts := FinalizeOptions{ForceRepeatRecreate: drag.mode != DragMove}
		if _, err := c.svc.FinalizeSchedule(drag.sessionID, opts); err != nil {
			return c.abort("finalizing gesture", err)
		}
		return nil

	case c.press != nil:
		press := c.press
		c.press = nil
		if press.moved {
			return nil
		}
		return c.createAt(press.day, press.y)
	}
	return nil
}

func (c *Controller) createAt(day Day, y float64) error {
	clickMinutes := int(math.Round(c.grid.OffsetToMinutes(y)))
	if !c.policy.Allows(day, clickMinutes) {
		msg := fmt.Sprintf("Sessions on %s must be scheduled after %s.",
			day, c.grid.FormatClockTime(c.policy.Threshold()))
		c.feedback.Notify(core.FeedbackWarning, msg)
		return core.NewValidationError(ErrRestrictedPlacement)
	}

	start := c.policy.Clamp(day, c.grid.SnapToQuantum(clickMinutes))
	duration := c.grid.DefaultDuration()
	if start+duration > c.grid.Span() {
		start = c.grid.Span() - duration
	}

	if _, err := c.svc.CreateMaster(day, start, duration); err != nil {
		return c.abort("creating session", err)
	}
	return nil
}

// Delete removes a master and its whole repeat group. The affordance does
// not exist on repeat members; those presses never reach here.
func (c *Controller) Delete(id string) error {
	if err := c.svc.Delete(id); err != nil {
		return c.abort("deleting session", err)
	}
	return nil
}

// ApplyPreset sets a master's duration to one of the configured class-length
// presets and finalizes immediately, forcing the repeat set to be recreated
// since the preset decides which pattern applies.
func (c *Controller) ApplyPreset(id string, minutes int) error {
	if !c.grid.IsPreset(minutes) {
		return core.NewValidationError(
			errors.Errorf("%d minutes is not a preset duration", minutes),
			core.FieldError{Field: "duration", Error: "not a preset duration"},
		)
	}
	if _, err := c.svc.UpdateMasterSchedule(id, nil, &minutes); err != nil {
		return c.abort("applying preset", err)
	}
	if _, err := c.svc.FinalizeSchedule(id, FinalizeOptions{ForceRepeatRecreate: true}); err != nil {
		return c.abort("applying preset", err)
	}
	return nil
}

// Assign applies a lookup selection to a master session.
func (c *Controller) Assign(id string, field Field, value int) error {
	if _, err := c.svc.AssignField(id, field, null.IntFrom(value)); err != nil {
		return c.abort("assigning "+string(field), err)
	}
	return nil
}

// abort reports the failure and leaves the state machine Idle with the
// session set unchanged. NotFound resolves to a logged no-op; anything else
// propagates.
func (c *Controller) abort(action string, err error) error {
	c.drag = nil
	c.press = nil
	if errors.Cause(err) == ErrNotFound {
		c.logger.Warn(fmt.Sprintf("%s: %v", action, err), err)
		return nil
	}
	return errors.Wrap(err, action)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
