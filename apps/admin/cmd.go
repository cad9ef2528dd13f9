package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/earseneau1/course-scheduler/core/directory"
	"github.com/earseneau1/course-scheduler/core/schedule"
	exportsvc "github.com/earseneau1/course-scheduler/services/export"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db       *sqlx.DB
	dirSvc   *directory.Service
	recorder schedule.Recorder
	exporter *exportsvc.Exporter

	// mockable
	writeFile func(string, []byte, os.FileMode) error
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  initdb                                - apply the database schema")
	fmt.Println("  seed                                  - load sample directory data")
	fmt.Println("  export -format ics|xlsx -out FILE     - export the persisted schedule")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportFormat := exportCmd.String("format", "ics", "Export format: ics or xlsx.")
	exportOut := exportCmd.String("out", "", "Destination file.")
	exportWeek := exportCmd.String("week", "", "Week start date (YYYY-MM-DD, a Monday); defaults to the upcoming Monday.")

	switch args[1] {
	case "initdb":
		return cli.initDB()
	case "seed":
		return cli.seed()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportFormat, *exportOut, *exportWeek)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) seed() error {
	for _, name := range []string{"Dr. Smith", "Prof. Johnson", "Dr. Williams", "Prof. Brown"} {
		if _, err := cli.dirSvc.CreateProfessor(directory.NewProfessor{Name: name}); err != nil {
			return err
		}
	}
	classes := []directory.NewClass{
		{Name: "Mathematics 101", Code: "MATH101"},
		{Name: "History 202", Code: "HIST202"},
		{Name: "Biology 303", Code: "BIO303"},
		{Name: "Chemistry 404", Code: "CHEM404"},
	}
	for _, c := range classes {
		if _, err := cli.dirSvc.CreateClass(c); err != nil {
			return err
		}
	}
	rooms := []directory.NewRoom{
		{Name: "101", Capacity: 40, Building: "Sciences"},
		{Name: "204", Capacity: 25, Building: "Humanities"},
		{Name: "Auditorium A", Capacity: 120, Building: "Main"},
	}
	for _, r := range rooms {
		if _, err := cli.dirSvc.CreateRoom(r); err != nil {
			return err
		}
	}
	fmt.Println("directory seeded")
	return nil
}

func (cli *commandLine) export(format, out, week string) error {
	weekStart, err := resolveWeekStart(week)
	if err != nil {
		return err
	}

	sessions, err := cli.listSessions()
	if err != nil {
		return err
	}

	switch format {
	case "ics":
		data, err := cli.exporter.ICS(sessions, weekStart)
		if err != nil {
			return err
		}
		return cli.writeFile(out, []byte(data), 0o644)
	case "xlsx":
		f, err := cli.exporter.XLSX(sessions)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		buf, err := f.WriteToBuffer()
		if err != nil {
			return err
		}
		return cli.writeFile(out, buf.Bytes(), 0o644)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func resolveWeekStart(week string) (time.Time, error) {
	if week != "" {
		return time.Parse("2006-01-02", week)
	}
	now := time.Now()
	offset := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, offset).Truncate(24 * time.Hour), nil
}
