package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/earseneau1/course-scheduler/core/schedule"
)

// sessionRecorder persists sessions to postgres. It implements the
// schedule.Recorder contract: the in-memory store commits first and calls
// these without waiting.
type sessionRecorder struct {
	db *sqlx.DB
}

func NewSessionRecorder(db *sqlx.DB) schedule.Recorder {
	return &sessionRecorder{db: db}
}

func (rec *sessionRecorder) List(ctx context.Context) ([]schedule.Session, error) {
	var sessions []schedule.Session
	err := rec.db.SelectContext(ctx, &sessions, `SELECT * FROM sessions`)
	return sessions, errors.Wrap(err, "listing sessions")
}

func (rec *sessionRecorder) Create(ctx context.Context, s schedule.Session) error {
	_, err := rec.db.NamedExecContext(ctx, `
		INSERT INTO sessions (id, day, start_time, duration, is_repeat, repeat_group_id, repeat_pattern,
		                      professor_id, class_id, room_id, term_id)
		VALUES (:id, :day, :start_time, :duration, :is_repeat, :repeat_group_id, :repeat_pattern,
		        :professor_id, :class_id, :room_id, :term_id)`,
		s,
	)
	return errors.Wrapf(err, "inserting session %s", s.ID)
}

func (rec *sessionRecorder) Update(ctx context.Context, s schedule.Session) error {
	res, err := rec.db.NamedExecContext(ctx, `
		UPDATE sessions
		SET day = :day, start_time = :start_time, duration = :duration, is_repeat = :is_repeat,
		    repeat_group_id = :repeat_group_id, repeat_pattern = :repeat_pattern,
		    professor_id = :professor_id, class_id = :class_id, room_id = :room_id, term_id = :term_id
		WHERE id = :id`,
		s,
	)
	if err != nil {
		return errors.Wrapf(err, "updating session %s", s.ID)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// fire-and-forget writes can arrive out of order; upsert
		return rec.Create(ctx, s)
	}
	return nil
}

func (rec *sessionRecorder) Delete(ctx context.Context, id string) error {
	_, err := rec.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return errors.Wrapf(err, "deleting session %s", id)
}
