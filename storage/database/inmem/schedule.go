package inmemdb

import (
	"github.com/earseneau1/course-scheduler/core/schedule"
)

type sessionRepository struct {
	db *sessionTable
}

func NewSessionRepository(db *DB) schedule.Repository {
	return &sessionRepository{db: db.sessions}
}

func (repo *sessionRepository) query() []schedule.Session {
	sessions := make([]schedule.Session, 0, len(repo.db.t))
	for _, s := range repo.db.t {
		sessions = append(sessions, *s)
	}
	return sessions
}

func (repo *sessionRepository) CreateSession(s schedule.Session) (schedule.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.t[s.ID] = &s
	return s, nil
}

func (repo *sessionRepository) GetSessionByID(id string) (schedule.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.t[id]; ok {
		return *s, nil
	}
	return schedule.Session{}, schedule.ErrNotFound
}

func (repo *sessionRepository) QueryAllSessions() ([]schedule.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *sessionRepository) QuerySessionsByGroup(groupID string) ([]schedule.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var sessions []schedule.Session
	for _, s := range repo.db.t {
		if s.RepeatGroupID.Valid && s.RepeatGroupID.String == groupID {
			sessions = append(sessions, *s)
		}
	}
	return sessions, nil
}

func (repo *sessionRepository) UpdateSession(s schedule.Session) (schedule.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[s.ID]; !ok {
		return schedule.Session{}, schedule.ErrNotFound
	}
	repo.db.t[s.ID] = &s
	return s, nil
}

func (repo *sessionRepository) DeleteSessionsByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.t, id)
	}
	return nil
}
