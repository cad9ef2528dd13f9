package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/earseneau1/course-scheduler/core/directory"
)

type directoryApi struct {
	deps ServerDeps
}

func registerDirectoryAPI(g *echo.Group, deps ServerDeps) {
	api := directoryApi{deps: deps}

	dg := g.Group("/directory")
	dg.GET("/professors", api.queryProfessors)
	dg.POST("/professors", api.createProfessor)
	dg.GET("/classes", api.queryClasses)
	dg.POST("/classes", api.createClass)
	dg.GET("/rooms", api.queryRooms)
	dg.POST("/rooms", api.createRoom)
	dg.GET("/terms", api.queryTerms)
	dg.POST("/terms", api.createTerm)
}

// Handlers
//
// The GET endpoints double as the lookup collaborators' search: an optional
// ?q= filters case-insensitively.

func (api *directoryApi) queryProfessors(ctx echo.Context) error {
	professors, err := api.deps.DirectorySvc.SearchProfessors(ctx.QueryParam("q"))
	if err != nil {
		return errors.Wrap(err, "searching professors")
	}
	return ctx.JSON(http.StatusOK, professors)
}

func (api *directoryApi) createProfessor(ctx echo.Context) error {
	var data directory.NewProfessor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProfessor")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	prof, err := api.deps.DirectorySvc.CreateProfessor(data)
	if err != nil {
		return errors.Wrap(err, "creating professor")
	}
	return ctx.JSON(http.StatusCreated, prof)
}

func (api *directoryApi) queryClasses(ctx echo.Context) error {
	classes, err := api.deps.DirectorySvc.SearchClasses(ctx.QueryParam("q"))
	if err != nil {
		return errors.Wrap(err, "searching classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *directoryApi) createClass(ctx echo.Context) error {
	var data directory.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	class, err := api.deps.DirectorySvc.CreateClass(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, class)
}

func (api *directoryApi) queryRooms(ctx echo.Context) error {
	rooms, err := api.deps.DirectorySvc.SearchRooms(ctx.QueryParam("q"))
	if err != nil {
		return errors.Wrap(err, "searching rooms")
	}
	return ctx.JSON(http.StatusOK, rooms)
}

func (api *directoryApi) createRoom(ctx echo.Context) error {
	var data directory.NewRoom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRoom")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	room, err := api.deps.DirectorySvc.CreateRoom(data)
	if err != nil {
		return errors.Wrap(err, "creating room")
	}
	return ctx.JSON(http.StatusCreated, room)
}

func (api *directoryApi) queryTerms(ctx echo.Context) error {
	terms, err := api.deps.DirectorySvc.QueryTerms()
	if err != nil {
		return errors.Wrap(err, "querying terms")
	}
	return ctx.JSON(http.StatusOK, terms)
}

func (api *directoryApi) createTerm(ctx echo.Context) error {
	var data directory.NewTerm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTerm")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	term, err := api.deps.DirectorySvc.CreateTerm(data)
	if err != nil {
		return errors.Wrap(err, "creating term")
	}
	return ctx.JSON(http.StatusCreated, term)
}
