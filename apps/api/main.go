package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/earseneau1/course-scheduler/apps/api/echo"
	"github.com/earseneau1/course-scheduler/core"
	"github.com/earseneau1/course-scheduler/core/directory"
	"github.com/earseneau1/course-scheduler/core/schedule"
	exportsvc "github.com/earseneau1/course-scheduler/services/export"
	feedbacksvc "github.com/earseneau1/course-scheduler/services/feedback"
	logsvc "github.com/earseneau1/course-scheduler/services/logger"
	snapshotsvc "github.com/earseneau1/course-scheduler/services/snapshot"
	"github.com/earseneau1/course-scheduler/storage/database"
	inmemdb "github.com/earseneau1/course-scheduler/storage/database/inmem"
	"github.com/earseneau1/course-scheduler/storage/database/sqlxrepos"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	feedback := feedbacksvc.NewConsoleFeedback(
		log.New(os.Stdout, "FEEDBACK : ", log.LstdFlags),
	)

	// The in-memory store is the gesture loop's source of truth; postgres is
	// the fire-and-forget persistence collaborator and is optional.
	memdb, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening in-memory store: %v", err), err)
	}
	dirRepo := inmemdb.NewDirectoryRepository(memdb)
	if err = inmemdb.Seed(dirRepo); err != nil {
		logger.Fatal(fmt.Sprintf("seeding directory: %v", err), err)
	}

	var recorder schedule.Recorder
	if db, dbErr := database.Open(conf); dbErr == nil {
		if pingErr := database.Ping(db); pingErr == nil {
			recorder = sqlxrepos.NewSessionRecorder(db)
			defer func() { _ = db.Close() }()
		} else {
			logger.Warn(fmt.Sprintf("database unreachable, running without persistence: %v", pingErr), pingErr)
		}
	} else {
		logger.Warn(fmt.Sprintf("database unavailable, running without persistence: %v", dbErr), dbErr)
	}

	schedSvc := schedule.NewService(conf, inmemdb.NewSessionRepository(memdb), logger, feedback, recorder)
	dirSvc := directory.NewService(dirRepo)
	exporter := exportsvc.NewExporter(conf, dirSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	var snapshot *snapshotsvc.Job
	if recorder != nil && conf.Snapshot.Schedule != "" {
		snapshot = snapshotsvc.NewJob(schedSvc, recorder, logger)
		if err = snapshot.Start(conf.Snapshot.Schedule); err != nil {
			logger.Fatal(fmt.Sprintf("starting snapshot job: %v", err), err)
		}
		defer snapshot.Stop()
	}

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			ScheduleSvc:  schedSvc,
			DirectorySvc: dirSvc,
			Exporter:     exporter,
			Validate:     validate,
			Translator:   translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
