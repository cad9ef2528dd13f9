package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/earseneau1/course-scheduler/core/directory"
	"github.com/earseneau1/course-scheduler/core/schedule"
	exportsvc "github.com/earseneau1/course-scheduler/services/export"
	inmemdb "github.com/earseneau1/course-scheduler/storage/database/inmem"
	testutil "github.com/earseneau1/course-scheduler/tests"
)

// stubRecorder serves a canned session list; the CLI only reads.
type stubRecorder struct {
	sessions []schedule.Session
}

func (r *stubRecorder) List(context.Context) ([]schedule.Session, error) { return r.sessions, nil }
func (r *stubRecorder) Create(context.Context, schedule.Session) error   { return nil }
func (r *stubRecorder) Update(context.Context, schedule.Session) error   { return nil }
func (r *stubRecorder) Delete(context.Context, string) error             { return nil }

func setup(t *testing.T, sessions ...schedule.Session) (*commandLine, map[string][]byte) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	dirSvc := directory.NewService(inmemdb.NewDirectoryRepository(db))

	written := make(map[string][]byte)
	cli := &commandLine{
		dirSvc:   dirSvc,
		recorder: &stubRecorder{sessions: sessions},
		exporter: exportsvc.NewExporter(testutil.NewConfig(), dirSvc),
		writeFile: func(name string, data []byte, _ os.FileMode) error {
			written[name] = data
			return nil
		},
	}
	return cli, written
}

func mwfGroup() []schedule.Session {
	group := null.StringFrom("group-1")
	return []schedule.Session{
		{ID: "m", Day: schedule.Monday, StartTime: 60, Duration: 50, RepeatGroupID: group},
		{ID: "w", Day: schedule.Wednesday, StartTime: 60, Duration: 50, IsRepeat: true,
			RepeatGroupID: group, RepeatPattern: null.StringFrom("MWF")},
		{ID: "f", Day: schedule.Friday, StartTime: 60, Duration: 50, IsRepeat: true,
			RepeatGroupID: group, RepeatPattern: null.StringFrom("MWF")},
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_help(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "export without out", args: []string{"export", "-format", "ics"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli, _ := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}

	professors, _ := cli.dirSvc.QueryProfessors()
	assert.Len(t, professors, 4)
	classes, _ := cli.dirSvc.QueryClasses()
	assert.Len(t, classes, 4)
	rooms, _ := cli.dirSvc.QueryRooms()
	assert.Len(t, rooms, 3)
}

func Test_commandLine_export(t *testing.T) {
	cli, written := setup(t, mwfGroup()...)

	err := cli.run([]string{"admin", "export", "-format", "ics", "-out", "week.ics", "-week", "2026-08-31"})
	if err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	out := string(written["week.ics"])
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BYDAY=MO,WE,FR")

	err = cli.run([]string{"admin", "export", "-format", "xlsx", "-out", "week.xlsx"})
	if err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	assert.NotEmpty(t, written["week.xlsx"])

	err = cli.run([]string{"admin", "export", "-format", "pdf", "-out", "week.pdf"})
	if err == nil || !strings.Contains(err.Error(), "unknown export format") {
		t.Errorf("cli.run() error = %v, want unknown export format", err)
	}

	err = cli.run([]string{"admin", "export", "-format", "ics", "-out", "w.ics", "-week", "lol"})
	assert.Error(t, err)
}
