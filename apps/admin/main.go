package main

import (
	"context"
	"log"
	"os"

	"github.com/earseneau1/course-scheduler/core"
	"github.com/earseneau1/course-scheduler/core/directory"
	"github.com/earseneau1/course-scheduler/core/schedule"
	exportsvc "github.com/earseneau1/course-scheduler/services/export"
	"github.com/earseneau1/course-scheduler/storage/database"
	"github.com/earseneau1/course-scheduler/storage/database/sqlxrepos"
)

func main() {
	conf := core.NewConfig()

	db, err := database.Open(conf)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err = database.Ping(db); err != nil {
		log.Fatalf("pinging database: %v", err)
	}

	dirSvc := directory.NewService(sqlxrepos.NewDirectoryRepository(db))
	cli := &commandLine{
		db:        db,
		dirSvc:    dirSvc,
		recorder:  sqlxrepos.NewSessionRecorder(db),
		exporter:  exportsvc.NewExporter(conf, dirSvc),
		writeFile: os.WriteFile,
	}
	if err = cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func (cli *commandLine) initDB() error {
	return database.ApplySchema(cli.db)
}

func (cli *commandLine) listSessions() ([]schedule.Session, error) {
	return cli.recorder.List(context.Background())
}
