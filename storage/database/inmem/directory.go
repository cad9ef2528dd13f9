package inmemdb

import (
	"github.com/earseneau1/course-scheduler/core/directory"
)

type directoryRepository struct {
	professors *table[directory.Professor]
	classes    *table[directory.Class]
	rooms      *table[directory.Room]
	terms      *table[directory.Term]
}

func NewDirectoryRepository(db *DB) directory.Repository {
	return &directoryRepository{
		professors: db.professors,
		classes:    db.classes,
		rooms:      db.rooms,
		terms:      db.terms,
	}
}

func insert[T any](tbl *table[T], set func(*T, int), v T) (T, error) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	tbl.pkCount++
	set(&v, tbl.pkCount)
	tbl.t[tbl.pkCount] = &v
	return v, nil
}

func queryAll[T any](tbl *table[T]) ([]T, error) {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	all := make([]T, 0, len(tbl.t))
	for _, v := range tbl.t {
		all = append(all, *v)
	}
	return all, nil
}

func (repo *directoryRepository) CreateProfessor(p directory.Professor) (directory.Professor, error) {
	return insert(repo.professors, func(v *directory.Professor, id int) { v.ID = id }, p)
}

func (repo *directoryRepository) QueryAllProfessors() ([]directory.Professor, error) {
	return queryAll(repo.professors)
}

func (repo *directoryRepository) CreateClass(c directory.Class) (directory.Class, error) {
	return insert(repo.classes, func(v *directory.Class, id int) { v.ID = id }, c)
}

func (repo *directoryRepository) QueryAllClasses() ([]directory.Class, error) {
	return queryAll(repo.classes)
}

func (repo *directoryRepository) CreateRoom(r directory.Room) (directory.Room, error) {
	return insert(repo.rooms, func(v *directory.Room, id int) { v.ID = id }, r)
}

func (repo *directoryRepository) QueryAllRooms() ([]directory.Room, error) {
	return queryAll(repo.rooms)
}

func (repo *directoryRepository) CreateTerm(t directory.Term) (directory.Term, error) {
	return insert(repo.terms, func(v *directory.Term, id int) { v.ID = id }, t)
}

func (repo *directoryRepository) QueryAllTerms() ([]directory.Term, error) {
	return queryAll(repo.terms)
}

// Seed loads the sample directory data the calendar ships with.
func Seed(repo directory.Repository) error {
	professors := []directory.Professor{
		{Name: "Dr. Smith"},
		{Name: "Prof. Johnson"},
		{Name: "Dr. Williams"},
		{Name: "Prof. Brown"},
	}
	for _, p := range professors {
		if _, err := repo.CreateProfessor(p); err != nil {
			return err
		}
	}

	classes := []directory.Class{
		{Name: "Mathematics 101", Code: "MATH101"},
		{Name: "History 202", Code: "HIST202"},
		{Name: "Biology 303", Code: "BIO303"},
		{Name: "Chemistry 404", Code: "CHEM404"},
	}
	for _, c := range classes {
		if _, err := repo.CreateClass(c); err != nil {
			return err
		}
	}

	rooms := []directory.Room{
		{Name: "101", Capacity: 40, Building: "Sciences"},
		{Name: "204", Capacity: 25, Building: "Humanities"},
		{Name: "Auditorium A", Capacity: 120, Building: "Main"},
	}
	for _, r := range rooms {
		if _, err := repo.CreateRoom(r); err != nil {
			return err
		}
	}
	return nil
}
