package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/earseneau1/course-scheduler/core"
	"github.com/earseneau1/course-scheduler/core/schedule"
	testutil "github.com/earseneau1/course-scheduler/tests"
)

func setupController(t *testing.T) (*schedule.Controller, *schedule.Service, *testutil.CaptureFeedback) {
	svc, feedback := setup(t)
	return schedule.NewController(svc, testutil.NopLogger{}, feedback), svc, feedback
}

func count(t *testing.T, svc *schedule.Service) int {
	t.Helper()
	all, err := svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	return len(all)
}

func TestController_clickCreate(t *testing.T) {
	c, svc, _ := setupController(t)

	// click at 75min on Monday: start snaps to 90, default duration applies
	c.PressGrid(schedule.Monday, 125)
	if err := c.Release(125); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	assert.True(t, c.Idle())

	all, _ := svc.QueryAll()
	assert.Len(t, all, 2) // master + Wednesday repeat
	for _, s := range all {
		if !s.IsRepeat {
			assert.Equal(t, schedule.Monday, s.Day)
			assert.Equal(t, 90, s.StartTime)
			assert.Equal(t, 80, s.Duration)
		}
	}
}

func TestController_clickCreate_restricted(t *testing.T) {
	c, svc, feedback := setupController(t)

	// 30min on Wednesday is before the 9 AM threshold
	c.PressGrid(schedule.Wednesday, 50)
	err := c.Release(50)
	assert.Equal(t, schedule.ErrRestrictedPlacement, validationCause(t, err))
	assert.Equal(t, 0, count(t, svc))
	assert.Equal(t,
		[]string{"warning: Sessions on Wednesday must be scheduled after 9:00 AM."},
		feedback.Messages)
	assert.True(t, c.Idle())

	// at the threshold the click goes through
	c.PressGrid(schedule.Wednesday, 100)
	if err = c.Release(100); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	assert.Equal(t, 1, count(t, svc))
}

func TestController_clickCreate_clampsToBottom(t *testing.T) {
	c, svc, _ := setupController(t)

	c.PressGrid(schedule.Saturday, 990)
	if err := c.Release(990); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	all, _ := svc.QueryAll()
	assert.Len(t, all, 1)
	assert.Equal(t, 520, all[0].StartTime)
	assert.Equal(t, 80, all[0].Duration)
}

func TestController_pressGridWithMove_noCreate(t *testing.T) {
	c, svc, _ := setupController(t)

	c.PressGrid(schedule.Monday, 100)
	if err := c.Move(140); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if err := c.Release(140); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	assert.Equal(t, 0, count(t, svc))
	assert.True(t, c.Idle())
}

func TestController_moveDrag(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Monday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}
	before := repeats(t, svc, master)
	assert.Len(t, before, 1)

	if err = c.PressSession(master.ID, schedule.DragMove, 100); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}
	assert.False(t, c.Idle())

	// intermediate positions are raw and mirrored onto the repeat
	if err = c.Move(171); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	mid, _ := svc.GetByID(master.ID)
	assert.Equal(t, 103, mid.StartTime)
	midRepeat, _ := svc.GetByID(before[0].ID)
	assert.Equal(t, 103, midRepeat.StartTime)

	// release snaps; the day set is unchanged so the repeat keeps its id
	if err = c.Release(171); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	assert.True(t, c.Idle())
	final, _ := svc.GetByID(master.ID)
	assert.Equal(t, 90, final.StartTime)
	assert.Equal(t, 80, final.Duration)

	after := repeats(t, svc, master)
	assert.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, 90, after[0].StartTime)
}

func TestController_moveDrag_clampsToGrid(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Saturday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}

	if err = c.PressSession(master.ID, schedule.DragMove, 0); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}
	if err = c.Move(-500); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	top, _ := svc.GetByID(master.ID)
	assert.Equal(t, 0, top.StartTime)

	if err = c.Move(5000); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	bottom, _ := svc.GetByID(master.ID)
	assert.Equal(t, 520, bottom.StartTime)
	assert.Equal(t, 600, bottom.End())

	if err = c.Release(5000); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
}

func TestController_resizeBottom(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Monday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}
	before := repeats(t, svc, master)
	assert.Len(t, before, 1)

	if err = c.PressSession(master.ID, schedule.DragResizeBottom, 0); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}
	if err = c.Move(-50); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if err = c.Release(-50); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	final, _ := svc.GetByID(master.ID)
	assert.Equal(t, 50, final.Duration)

	// the shorter class switches pattern: fresh Wednesday and Friday repeats
	after := repeats(t, svc, master)
	assert.ElementsMatch(t, []schedule.Day{schedule.Wednesday, schedule.Friday}, repeatDays(after))
	for _, m := range after {
		assert.NotEqual(t, before[0].ID, m.ID)
		assert.Equal(t, 50, m.Duration)
	}
}

func TestController_resizeTop(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Monday, 120, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}

	if err = c.PressSession(master.ID, schedule.DragResizeTop, 0); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}

	// the top edge cannot push duration below the floor
	if err = c.Move(1000); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	pinched, _ := svc.GetByID(master.ID)
	assert.Equal(t, 170, pinched.StartTime)
	assert.Equal(t, 30, pinched.Duration)

	if err = c.Move(50); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if err = c.Release(50); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	final, _ := svc.GetByID(master.ID)
	assert.Equal(t, 150, final.StartTime)
	assert.Equal(t, 50, final.Duration)
}

func TestController_pressOnRepeatIgnored(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Monday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}
	member := repeats(t, svc, master)[0]

	if err = c.PressSession(member.ID, schedule.DragMove, 0); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}
	assert.True(t, c.Idle())

	// subsequent move and release are no-ops
	if err = c.Move(500); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if err = c.Release(500); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	refetched, _ := svc.GetByID(member.ID)
	assert.Equal(t, 60, refetched.StartTime)
}

func TestController_pressIgnoredCases(t *testing.T) {
	c, svc, _ := setupController(t)

	// missing session resolves to a logged no-op
	if err := c.PressSession("nope", schedule.DragMove, 0); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}
	assert.True(t, c.Idle())

	master, err := svc.CreateMaster(schedule.Monday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}

	// a press during an active gesture is ignored
	if err = c.PressSession(master.ID, schedule.DragMove, 0); err != nil {
		t.Fatalf("PressSession() failed: %v", err)
	}
	c.PressGrid(schedule.Tuesday, 0)
	if err = c.Release(0); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	assert.True(t, c.Idle())
	assert.Equal(t, 2, count(t, svc)) // no click-to-create happened
}

func TestController_ApplyPreset(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Monday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}

	err = c.ApplyPreset(master.ID, 45)
	if _, ok := err.(*core.ValidationError); !ok {
		t.Fatalf("ApplyPreset(45) error = %v (%T), want *core.ValidationError", err, err)
	}
	unchanged, _ := svc.GetByID(master.ID)
	assert.Equal(t, 80, unchanged.Duration)

	if err = c.ApplyPreset(master.ID, 50); err != nil {
		t.Fatalf("ApplyPreset() failed: %v", err)
	}
	final, _ := svc.GetByID(master.ID)
	assert.Equal(t, 50, final.Duration)
	assert.ElementsMatch(t,
		[]schedule.Day{schedule.Wednesday, schedule.Friday},
		repeatDays(repeats(t, svc, master)))
}

func TestController_AssignAndDelete(t *testing.T) {
	c, svc, _ := setupController(t)

	master, err := svc.CreateMaster(schedule.Tuesday, 60, 80)
	if err != nil {
		t.Fatalf("CreateMaster() failed: %v", err)
	}

	if err = c.Assign(master.ID, schedule.FieldProfessor, 3); err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	for _, m := range repeats(t, svc, master) {
		assert.Equal(t, 3, m.ProfessorRef.Int)
	}

	if err = c.Delete(master.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	assert.Equal(t, 0, count(t, svc))

	// deleting a session that is already gone is a logged no-op
	if err = c.Delete(master.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
}
