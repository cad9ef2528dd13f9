package inmemdb

import (
	"sync"

	"github.com/earseneau1/course-scheduler/core/directory"
	"github.com/earseneau1/course-scheduler/core/schedule"
)

type (
	DB struct {
		sessions   *sessionTable
		professors *table[directory.Professor]
		classes    *table[directory.Class]
		rooms      *table[directory.Room]
		terms      *table[directory.Term]
	}

	sessionTable struct {
		t     map[string]*schedule.Session
		mutex sync.RWMutex
	}

	table[T any] struct {
		t       map[int]*T
		pkCount int
		mutex   sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		sessions:   &sessionTable{t: make(map[string]*schedule.Session)},
		professors: &table[directory.Professor]{t: make(map[int]*directory.Professor)},
		classes:    &table[directory.Class]{t: make(map[int]*directory.Class)},
		rooms:      &table[directory.Room]{t: make(map[int]*directory.Room)},
		terms:      &table[directory.Term]{t: make(map[int]*directory.Term)},
	}
	return db, nil
}
