package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/earseneau1/course-scheduler/core"
)

var (
	// errors
	ErrNotFound            = errors.New("session not found")
	ErrRestrictedPlacement = errors.New("sessions on this day must be scheduled after the restriction time")
	ErrInvalidRange        = errors.New("session does not fit on the grid")
	ErrRepeatMember        = errors.New("repeat sessions are edited through their master")
)

type (
	// Repository is the session collection the gesture loop mutates. The
	// in-memory implementation is the source of truth for rendering.
	Repository interface {
		CreateSession(s Session) (Session, error)
		GetSessionByID(id string) (Session, error)
		QueryAllSessions() ([]Session, error)
		QuerySessionsByGroup(groupID string) ([]Session, error)
		UpdateSession(s Session) (Session, error)
		DeleteSessionsByID(ids ...string) error
	}

	// Recorder is the persistence collaborator. The service calls it after
	// each locally-committed mutation and never waits for it; the in-memory
	// state stays authoritative regardless of persistence latency.
	Recorder interface {
		List(ctx context.Context) ([]Session, error)
		Create(ctx context.Context, s Session) error
		Update(ctx context.Context, s Session) error
		Delete(ctx context.Context, id string) error
	}

	// FinalizeOptions control how a gesture's end is reconciled.
	// ForceRepeatRecreate drops and recreates the repeat set even when the
	// derived day set is unchanged; resize gestures set it since a duration
	// change can switch the applicable pattern.
	FinalizeOptions struct {
		ForceRepeatRecreate bool
	}

	Service struct {
		repo     Repository
		rec      Recorder
		grid     Grid
		policy   RestrictionPolicy
		logger   core.Logger
		feedback core.Feedback

		// serializes reconciliation per group; the gesture loop is a single
		// actor but the snapshot job reads concurrently
		mutex sync.Mutex
	}
)

func NewService(conf *core.Config, repo Repository, logger core.Logger, feedback core.Feedback, rec Recorder) *Service {
	return &Service{
		repo:     repo,
		rec:      rec,
		grid:     NewGrid(conf.Grid),
		policy:   NewRestrictionPolicy(conf.Grid),
		logger:   logger,
		feedback: feedback,
	}
}

func (svc *Service) Grid() Grid                { return svc.grid }
func (svc *Service) Policy() RestrictionPolicy { return svc.policy }

func (svc *Service) GetByID(id string) (Session, error) {
	return svc.repo.GetSessionByID(id)
}

func (svc *Service) QueryAll() ([]Session, error) {
	return svc.repo.QueryAllSessions()
}

func (svc *Service) QueryGroup(groupID string) ([]Session, error) {
	return svc.repo.QuerySessionsByGroup(groupID)
}

// CreateMaster inserts a new master session with a fresh repeat group and
// immediately reconciles the group's repeat set.
func (svc *Service) CreateMaster(day Day, startTime, duration int) (Session, error) {
	if err := svc.validateRange(startTime, duration); err != nil {
		return Session{}, err
	}

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	master := Session{
		ID:            uuid.NewString(),
		Day:           day,
		StartTime:     startTime,
		Duration:      duration,
		RepeatGroupID: null.StringFrom(uuid.NewString()),
	}
	master, err := svc.repo.CreateSession(master)
	if err != nil {
		return Session{}, err
	}
	svc.record("session create", func(ctx context.Context) error { return svc.rec.Create(ctx, master) })

	if err = svc.reconcileRepeats(master, false); err != nil {
		return Session{}, err
	}
	return master, nil
}

// UpdateMasterSchedule mutates a master's raw, unsnapped schedule fields in
// place. It deliberately does not reconcile repeats; callers decide when to
// finalize so the repeat set is not rebuilt on every intermediate pixel of a
// drag.
func (svc *Service) UpdateMasterSchedule(id string, startTime, duration *int) (Session, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	master, err := svc.repo.GetSessionByID(id)
	if err != nil {
		return Session{}, err
	}
	if master.IsRepeat {
		return Session{}, core.NewValidationError(ErrRepeatMember)
	}

	if startTime != nil {
		master.StartTime = *startTime
	}
	if duration != nil {
		master.Duration = *duration
	}
	if err = svc.validateRange(master.StartTime, master.Duration); err != nil {
		return Session{}, err
	}
	return svc.repo.UpdateSession(master)
}

// FinalizeSchedule snaps the master's current schedule to the grid quantum,
// applies the restriction clamp, then reconciles the repeat set and syncs
// shared fields across the group.
func (svc *Service) FinalizeSchedule(id string, opts FinalizeOptions) (Session, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	master, err := svc.repo.GetSessionByID(id)
	if err != nil {
		return Session{}, err
	}
	if master.IsRepeat {
		return Session{}, core.NewValidationError(ErrRepeatMember)
	}

	master.StartTime = svc.policy.Clamp(master.Day, svc.grid.SnapToQuantum(master.StartTime))
	master.Duration = svc.grid.SnapToQuantum(master.Duration)
	if master.Duration < svc.grid.MinDuration() {
		master.Duration = svc.grid.MinDuration()
	}
	if master.End() > svc.grid.Span() {
		master.StartTime = svc.grid.Span() - master.Duration
	}
	if master.StartTime < 0 {
		master.StartTime = 0
	}

	master, err = svc.repo.UpdateSession(master)
	if err != nil {
		return Session{}, err
	}
	svc.record("session update", func(ctx context.Context) error { return svc.rec.Update(ctx, master) })

	if err = svc.reconcileRepeats(master, opts.ForceRepeatRecreate); err != nil {
		return Session{}, err
	}
	return svc.repo.GetSessionByID(id)
}

// AssignField sets a professor/class/room reference on a master and
// propagates it to every repeat member. Assigning through a repeat member is
// rejected; repeats are edited via their master.
func (svc *Service) AssignField(id string, field Field, value null.Int) (Session, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	master, err := svc.repo.GetSessionByID(id)
	if err != nil {
		return Session{}, err
	}
	if master.IsRepeat {
		return Session{}, core.NewValidationError(
			ErrRepeatMember,
			core.FieldError{Field: string(field), Error: ErrRepeatMember.Error()},
		)
	}

	master.setFieldRef(field, value)
	master, err = svc.repo.UpdateSession(master)
	if err != nil {
		return Session{}, err
	}
	svc.record("session update", func(ctx context.Context) error { return svc.rec.Update(ctx, master) })

	if err = svc.syncLocked(master); err != nil {
		return Session{}, err
	}
	return master, nil
}

// Delete removes the session with the given id. For a master this cascades
// to its whole repeat group; a repeat member has no independent delete.
func (svc *Service) Delete(id string) error {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	sess, err := svc.repo.GetSessionByID(id)
	if err != nil {
		return err
	}
	if sess.IsRepeat {
		return core.NewValidationError(ErrRepeatMember)
	}
	if !sess.RepeatGroupID.Valid {
		return svc.deleteSessions(sess)
	}
	return svc.deleteGroupLocked(sess.RepeatGroupID.String)
}

// DeleteGroup removes the master and every repeat member of a group
// atomically.
func (svc *Service) DeleteGroup(groupID string) error {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	return svc.deleteGroupLocked(groupID)
}

func (svc *Service) deleteGroupLocked(groupID string) error {
	members, err := svc.repo.QuerySessionsByGroup(groupID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return ErrNotFound
	}
	return svc.deleteSessions(members...)
}

func (svc *Service) deleteSessions(sessions ...Session) error {
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	if err := svc.repo.DeleteSessionsByID(ids...); err != nil {
		return err
	}
	for _, id := range ids {
		id := id
		svc.record("session delete", func(ctx context.Context) error { return svc.rec.Delete(ctx, id) })
	}
	return nil
}

// Sync copies the master's schedule and association fields to every other
// member of its group. Idempotent; members already in sync are not written.
func (svc *Service) Sync(masterID string) error {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	master, err := svc.repo.GetSessionByID(masterID)
	if err != nil {
		return err
	}
	return svc.syncLocked(master)
}

func (svc *Service) syncLocked(master Session) error {
	if !master.RepeatGroupID.Valid {
		return nil
	}
	members, err := svc.repo.QuerySessionsByGroup(master.RepeatGroupID.String)
	if err != nil {
		return err
	}
	for _, member := range members {
		if member.ID == master.ID || member.sameSchedule(master) {
			continue
		}
		member.StartTime = master.StartTime
		member.Duration = master.Duration
		member.ProfessorRef = master.ProfessorRef
		member.ClassRef = master.ClassRef
		member.RoomRef = master.RoomRef
		member, err = svc.repo.UpdateSession(member)
		if err != nil {
			return err
		}
		updated := member
		svc.record("session update", func(ctx context.Context) error { return svc.rec.Update(ctx, updated) })
	}
	return nil
}

// reconcileRepeats compares the freshly derived repeat set against the
// group's current repeat members. When the day sets match and recreation is
// not forced, members keep their identity and only shared fields resync;
// otherwise all repeats are dropped and recreated with fresh ids.
func (svc *Service) reconcileRepeats(master Session, force bool) error {
	if !master.RepeatGroupID.Valid {
		return nil
	}
	expected := DeriveRepeats(master.Day, master.Duration)

	members, err := svc.repo.QuerySessionsByGroup(master.RepeatGroupID.String)
	if err != nil {
		return err
	}
	var current []Session
	for _, m := range members {
		if m.IsRepeat {
			current = append(current, m)
		}
	}

	if !force && sameDays(expected, current) {
		return svc.syncLocked(master)
	}

	if len(current) > 0 {
		if err = svc.deleteSessions(current...); err != nil {
			return err
		}
	}
	for _, spec := range expected {
		repeat := Session{
			ID:            uuid.NewString(),
			Day:           spec.Day,
			StartTime:     master.StartTime,
			Duration:      master.Duration,
			IsRepeat:      true,
			RepeatGroupID: master.RepeatGroupID,
			RepeatPattern: null.StringFrom(string(spec.Pattern)),
			ProfessorRef:  master.ProfessorRef,
			ClassRef:      master.ClassRef,
			RoomRef:       master.RoomRef,
			TermRef:       master.TermRef,
		}
		repeat, err = svc.repo.CreateSession(repeat)
		if err != nil {
			return err
		}
		created := repeat
		svc.record("session create", func(ctx context.Context) error { return svc.rec.Create(ctx, created) })
	}
	return nil
}

func sameDays(expected []RepeatSpec, current []Session) bool {
	if len(expected) != len(current) {
		return false
	}
	days := make(map[Day]bool, len(current))
	for _, s := range current {
		days[s.Day] = true
	}
	for _, spec := range expected {
		if !days[spec.Day] {
			return false
		}
	}
	return true
}

func (svc *Service) validateRange(startTime, duration int) error {
	if startTime < 0 || duration < svc.grid.MinDuration() || startTime+duration > svc.grid.Span() {
		return core.NewValidationError(
			ErrInvalidRange,
			core.FieldError{Field: "start_time", Error: ErrInvalidRange.Error()},
		)
	}
	return nil
}

// record runs a persistence call in the background. Failures are reported,
// never propagated: the in-memory state already committed.
func (svc *Service) record(desc string, fn func(context.Context) error) {
	if svc.rec == nil {
		return
	}
	go func() {
		if err := fn(context.Background()); err != nil {
			svc.logger.Error(fmt.Sprintf("recording %s: %v", desc, err), err)
			if svc.feedback != nil {
				svc.feedback.Notify(core.FeedbackWarning, "schedule changes could not be saved")
			}
		}
	}()
}
