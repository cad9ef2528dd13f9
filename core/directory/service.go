package directory

import (
	"errors"
	"strings"

	"github.com/earseneau1/course-scheduler/core"
)

var ErrNotFound = errors.New("directory entry not found")

type (
	Repository interface {
		CreateProfessor(p Professor) (Professor, error)
		QueryAllProfessors() ([]Professor, error)
		CreateClass(c Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		CreateRoom(r Room) (Room, error)
		QueryAllRooms() ([]Room, error)
		CreateTerm(t Term) (Term, error)
		QueryAllTerms() ([]Term, error)
	}

	// Service is the lookup collaborator for the schedule's assignment
	// gestures: list, create and search over the thin directory entities.
	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateProfessor(np NewProfessor) (Professor, error) {
	return svc.repo.CreateProfessor(Professor{Name: core.CleanString(np.Name)})
}

func (svc *Service) QueryProfessors() ([]Professor, error) {
	return svc.repo.QueryAllProfessors()
}

// SearchProfessors does a case-insensitive substring match on names.
func (svc *Service) SearchProfessors(query string) ([]Professor, error) {
	all, err := svc.repo.QueryAllProfessors()
	if err != nil {
		return nil, err
	}
	query = core.CleanString(query, true)
	matches := make([]Professor, 0, len(all))
	for _, p := range all {
		if matchName(query, p.Name) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (svc *Service) CreateClass(nc NewClass) (Class, error) {
	return svc.repo.CreateClass(Class{
		Name:   core.CleanString(nc.Name),
		Code:   strings.ToUpper(core.CleanString(nc.Code)),
		TermID: nc.TermID,
	})
}

func (svc *Service) QueryClasses() ([]Class, error) {
	return svc.repo.QueryAllClasses()
}

// SearchClasses matches on class name or code, case-insensitively.
func (svc *Service) SearchClasses(query string) ([]Class, error) {
	all, err := svc.repo.QueryAllClasses()
	if err != nil {
		return nil, err
	}
	query = core.CleanString(query, true)
	matches := make([]Class, 0, len(all))
	for _, c := range all {
		if matchName(query, c.Name) || matchName(query, c.Code) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (svc *Service) CreateRoom(nr NewRoom) (Room, error) {
	return svc.repo.CreateRoom(Room{
		Name:     core.CleanString(nr.Name),
		Capacity: nr.Capacity,
		Building: core.CleanString(nr.Building),
	})
}

func (svc *Service) QueryRooms() ([]Room, error) {
	return svc.repo.QueryAllRooms()
}

// SearchRooms matches on room name or building, case-insensitively.
func (svc *Service) SearchRooms(query string) ([]Room, error) {
	all, err := svc.repo.QueryAllRooms()
	if err != nil {
		return nil, err
	}
	query = core.CleanString(query, true)
	matches := make([]Room, 0, len(all))
	for _, r := range all {
		if matchName(query, r.Name) || matchName(query, r.Building) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (svc *Service) CreateTerm(nt NewTerm) (Term, error) {
	return svc.repo.CreateTerm(Term{
		Name:      core.CleanString(nt.Name),
		StartDate: nt.StartDate.UTC(),
		EndDate:   nt.EndDate.UTC(),
		Status:    TermDraft,
	})
}

func (svc *Service) QueryTerms() ([]Term, error) {
	return svc.repo.QueryAllTerms()
}

func matchName(query, name string) bool {
	return query == "" || strings.Contains(strings.ToLower(name), query)
}
