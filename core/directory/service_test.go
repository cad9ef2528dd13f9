package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/earseneau1/course-scheduler/core/directory"
	inmemdb "github.com/earseneau1/course-scheduler/storage/database/inmem"
)

func setup(t *testing.T) *directory.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return directory.NewService(inmemdb.NewDirectoryRepository(db))
}

func TestService_professors(t *testing.T) {
	svc := setup(t)

	p, err := svc.CreateProfessor(directory.NewProfessor{Name: "  Dr. Smith  "})
	if err != nil {
		t.Fatalf("CreateProfessor() failed: %v", err)
	}
	assert.Equal(t, "Dr. Smith", p.Name)
	assert.NotZero(t, p.ID)

	if _, err = svc.CreateProfessor(directory.NewProfessor{Name: "Prof. Johnson"}); err != nil {
		t.Fatalf("CreateProfessor() failed: %v", err)
	}

	all, err := svc.QueryProfessors()
	if err != nil {
		t.Fatalf("QueryProfessors() failed: %v", err)
	}
	assert.Len(t, all, 2)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "empty query matches all", query: "", want: 2},
		{name: "case-insensitive substring", query: "smith", want: 1},
		{name: "shared prefix", query: "r", want: 2},
		{name: "no match", query: "zzz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SearchProfessors(tt.query)
			if err != nil {
				t.Fatalf("SearchProfessors() failed: %v", err)
			}
			assert.Len(t, got, tt.want)
		})
	}
}

func TestService_classes(t *testing.T) {
	svc := setup(t)

	c, err := svc.CreateClass(directory.NewClass{Name: "Mathematics 101", Code: "math101"})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	assert.Equal(t, "MATH101", c.Code)

	if _, err = svc.CreateClass(directory.NewClass{Name: "History 202", Code: "HIST202"}); err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}

	// search matches name or code
	byCode, err := svc.SearchClasses("math")
	if err != nil {
		t.Fatalf("SearchClasses() failed: %v", err)
	}
	assert.Len(t, byCode, 1)

	byName, err := svc.SearchClasses("history")
	if err != nil {
		t.Fatalf("SearchClasses() failed: %v", err)
	}
	assert.Len(t, byName, 1)
}

func TestService_rooms(t *testing.T) {
	svc := setup(t)

	r, err := svc.CreateRoom(directory.NewRoom{Name: "101", Capacity: 40, Building: "Sciences"})
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}
	assert.Equal(t, 40, r.Capacity)

	byBuilding, err := svc.SearchRooms("scien")
	if err != nil {
		t.Fatalf("SearchRooms() failed: %v", err)
	}
	assert.Len(t, byBuilding, 1)
}

func TestService_terms(t *testing.T) {
	svc := setup(t)

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	term, err := svc.CreateTerm(directory.NewTerm{
		Name:      "Fall 2026",
		StartDate: start,
		EndDate:   start.AddDate(0, 4, 0),
	})
	if err != nil {
		t.Fatalf("CreateTerm() failed: %v", err)
	}
	assert.Equal(t, directory.TermDraft, term.Status)

	all, err := svc.QueryTerms()
	if err != nil {
		t.Fatalf("QueryTerms() failed: %v", err)
	}
	assert.Len(t, all, 1)
}
