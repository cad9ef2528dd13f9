package directory

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Term statuses.
const (
	TermDraft     = "draft"
	TermPublished = "published"
	TermArchived  = "archived"
)

type (
	Professor struct {
		ID   int    `json:"id" db:"id"`
		Name string `json:"name" db:"name"`
	}

	Class struct {
		ID     int      `json:"id" db:"id"`
		Name   string   `json:"name" db:"name"`
		Code   string   `json:"code" db:"code"`
		TermID null.Int `json:"term_id" db:"term_id"`
	}

	Room struct {
		ID       int    `json:"id" db:"id"`
		Name     string `json:"name" db:"name"`
		Capacity int    `json:"capacity" db:"capacity"`
		Building string `json:"building" db:"building"`
	}

	Term struct {
		ID        int       `json:"id" db:"id"`
		Name      string    `json:"name" db:"name"`
		StartDate time.Time `json:"start_date" db:"start_date"`
		EndDate   time.Time `json:"end_date" db:"end_date"`
		Status    string    `json:"status" db:"status"`
	}
)

type (
	NewProfessor struct {
		Name string `json:"name" validate:"required"`
	}

	NewClass struct {
		Name   string   `json:"name" validate:"required"`
		Code   string   `json:"code" validate:"required"`
		TermID null.Int `json:"term_id"`
	}

	NewRoom struct {
		Name     string `json:"name" validate:"required"`
		Capacity int    `json:"capacity" validate:"required,min=1"`
		Building string `json:"building" validate:"required"`
	}

	NewTerm struct {
		Name      string    `json:"name" validate:"required"`
		StartDate time.Time `json:"start_date" validate:"required"`
		EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	}
)
