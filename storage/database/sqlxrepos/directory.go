package sqlxrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/earseneau1/course-scheduler/core/directory"
)

// directoryRepository is the postgres-backed directory.Repository, used by
// the admin CLI for seeding and by deployments wanting durable directories.
type directoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) directory.Repository {
	return &directoryRepository{db: db}
}

func (repo *directoryRepository) CreateProfessor(p directory.Professor) (directory.Professor, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO professors (name) VALUES ($1) RETURNING id`, p.Name,
	).Scan(&p.ID)
	return p, errors.Wrap(err, "inserting professor")
}

func (repo *directoryRepository) QueryAllProfessors() ([]directory.Professor, error) {
	var all []directory.Professor
	err := repo.db.Select(&all, `SELECT * FROM professors ORDER BY id`)
	return all, errors.Wrap(err, "listing professors")
}

func (repo *directoryRepository) CreateClass(c directory.Class) (directory.Class, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO classes (name, code, term_id) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Code, c.TermID,
	).Scan(&c.ID)
	return c, errors.Wrap(err, "inserting class")
}

func (repo *directoryRepository) QueryAllClasses() ([]directory.Class, error) {
	var all []directory.Class
	err := repo.db.Select(&all, `SELECT * FROM classes ORDER BY id`)
	return all, errors.Wrap(err, "listing classes")
}

func (repo *directoryRepository) CreateRoom(r directory.Room) (directory.Room, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO rooms (name, capacity, building) VALUES ($1, $2, $3) RETURNING id`,
		r.Name, r.Capacity, r.Building,
	).Scan(&r.ID)
	return r, errors.Wrap(err, "inserting room")
}

func (repo *directoryRepository) QueryAllRooms() ([]directory.Room, error) {
	var all []directory.Room
	err := repo.db.Select(&all, `SELECT * FROM rooms ORDER BY id`)
	return all, errors.Wrap(err, "listing rooms")
}

func (repo *directoryRepository) CreateTerm(t directory.Term) (directory.Term, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO terms (name, start_date, end_date, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Name, t.StartDate, t.EndDate, t.Status,
	).Scan(&t.ID)
	return t, errors.Wrap(err, "inserting term")
}

func (repo *directoryRepository) QueryAllTerms() ([]directory.Term, error) {
	var all []directory.Term
	err := repo.db.Select(&all, `SELECT * FROM terms ORDER BY id`)
	return all, errors.Wrap(err, "listing terms")
}
