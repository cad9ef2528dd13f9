package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/earseneau1/course-scheduler/core"
	"github.com/earseneau1/course-scheduler/core/schedule"
)

type (
	scheduleApi struct {
		deps ServerDeps
	}

	CreateSessionRequest struct {
		Day       string `json:"day" validate:"required"`
		StartTime int    `json:"start_time" validate:"min=0"`
		Duration  *int   `json:"duration"`
	}

	UpdateSessionRequest struct {
		StartTime           *int `json:"start_time"`
		Duration            *int `json:"duration"`
		Finalize            bool `json:"finalize"`
		ForceRepeatRecreate bool `json:"force_repeat_recreate"`
	}

	AssignRequest struct {
		Field string `json:"field" validate:"required"`
		Value int    `json:"value" validate:"required,min=1"`
	}

	PresetRequest struct {
		Duration int `json:"duration" validate:"required,min=1"`
	}
)

func registerScheduleAPI(g *echo.Group, deps ServerDeps) {
	api := scheduleApi{deps: deps}

	sg := g.Group("/schedule/sessions")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/:id", api.retrieve)
	sg.PATCH("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
	sg.POST("/:id/assign", api.assign)
	sg.POST("/:id/preset", api.preset)
}

// Handlers

func (api *scheduleApi) query(ctx echo.Context) error {
	sessions, err := api.deps.ScheduleSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying sessions")
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *scheduleApi) retrieve(ctx echo.Context) error {
	sess, err := api.deps.ScheduleSvc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

// create follows the click-to-create contract: a restricted placement is a
// hard reject, an allowed one is snapped and seeded with the default
// duration.
func (api *scheduleApi) create(ctx echo.Context) error {
	var data CreateSessionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CreateSessionRequest")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}

	day, err := schedule.ParseDay(data.Day)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "day", Error: err.Error()})
	}

	svc := api.deps.ScheduleSvc
	grid, policy := svc.Grid(), svc.Policy()

	if !policy.Allows(day, data.StartTime) {
		return core.NewValidationError(
			schedule.ErrRestrictedPlacement,
			core.FieldError{Field: "start_time", Error: schedule.ErrRestrictedPlacement.Error()},
		)
	}

	start := policy.Clamp(day, grid.SnapToQuantum(data.StartTime))
	duration := grid.DefaultDuration()
	if data.Duration != nil {
		duration = *data.Duration
	}
	if start+duration > grid.Span() {
		start = grid.Span() - duration
	}

	sess, err := svc.CreateMaster(day, start, duration)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sess)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	var data UpdateSessionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSessionRequest")
	}

	svc := api.deps.ScheduleSvc
	id := ctx.Param("id")

	if data.StartTime != nil || data.Duration != nil {
		if _, err := svc.UpdateMasterSchedule(id, data.StartTime, data.Duration); err != nil {
			return err
		}
	}

	if data.Finalize {
		sess, err := svc.FinalizeSchedule(id, schedule.FinalizeOptions{
			ForceRepeatRecreate: data.ForceRepeatRecreate,
		})
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, sess)
	}

	if err := svc.Sync(id); err != nil {
		return err
	}
	sess, err := svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	if err := api.deps.ScheduleSvc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *scheduleApi) assign(ctx echo.Context) error {
	var data AssignRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AssignRequest")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}

	field, err := schedule.ParseField(data.Field)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "field", Error: err.Error()})
	}

	sess, err := api.deps.ScheduleSvc.AssignField(ctx.Param("id"), field, null.IntFrom(data.Value))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *scheduleApi) preset(ctx echo.Context) error {
	var data PresetRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PresetRequest")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}

	svc := api.deps.ScheduleSvc
	if !svc.Grid().IsPreset(data.Duration) {
		return core.NewValidationError(
			errors.Errorf("%d minutes is not a preset duration", data.Duration),
			core.FieldError{Field: "duration", Error: "not a preset duration"},
		)
	}

	id := ctx.Param("id")
	if _, err := svc.UpdateMasterSchedule(id, nil, &data.Duration); err != nil {
		return err
	}
	sess, err := svc.FinalizeSchedule(id, schedule.FinalizeOptions{ForceRepeatRecreate: true})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}
