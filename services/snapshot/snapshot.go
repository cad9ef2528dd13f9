package snapshotsvc

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/earseneau1/course-scheduler/core"
	"github.com/earseneau1/course-scheduler/core/schedule"
)

// Job periodically reconciles the persistence store with the in-memory
// session set. Individual writes are fire-and-forget and may be lost; the
// snapshot makes the drift bounded.
type Job struct {
	c      *cron.Cron
	svc    *schedule.Service
	rec    schedule.Recorder
	logger core.Logger
}

func NewJob(svc *schedule.Service, rec schedule.Recorder, logger core.Logger) *Job {
	return &Job{
		c:      cron.New(),
		svc:    svc,
		rec:    rec,
		logger: logger,
	}
}

// Start schedules the snapshot on the given cron spec and begins running.
func (j *Job) Start(spec string) error {
	if _, err := j.c.AddFunc(spec, j.run); err != nil {
		return errors.Wrapf(err, "scheduling snapshot %q", spec)
	}
	j.c.Start()
	return nil
}

// Stop halts the scheduler; a running snapshot finishes first.
func (j *Job) Stop() {
	<-j.c.Stop().Done()
}

// Run flushes immediately. Exposed for the admin CLI and tests.
func (j *Job) Run() {
	j.run()
}

func (j *Job) run() {
	ctx := context.Background()

	current, err := j.svc.QueryAll()
	if err != nil {
		j.logger.Error(fmt.Sprintf("snapshot: listing sessions: %v", err), err)
		return
	}
	persisted, err := j.rec.List(ctx)
	if err != nil {
		j.logger.Error(fmt.Sprintf("snapshot: listing persisted sessions: %v", err), err)
		return
	}

	persistedByID := make(map[string]schedule.Session, len(persisted))
	for _, s := range persisted {
		persistedByID[s.ID] = s
	}

	var wrote, removed int
	for _, s := range current {
		prev, ok := persistedByID[s.ID]
		delete(persistedByID, s.ID)
		if ok && prev == s {
			continue
		}
		if ok {
			err = j.rec.Update(ctx, s)
		} else {
			err = j.rec.Create(ctx, s)
		}
		if err != nil {
			j.logger.Error(fmt.Sprintf("snapshot: writing session %s: %v", s.ID, err), err)
			continue
		}
		wrote++
	}
	for id := range persistedByID {
		if err = j.rec.Delete(ctx, id); err != nil {
			j.logger.Error(fmt.Sprintf("snapshot: deleting session %s: %v", id, err), err)
			continue
		}
		removed++
	}

	if wrote > 0 || removed > 0 {
		j.logger.Info(fmt.Sprintf("snapshot: %d written, %d removed", wrote, removed))
	}
}
