package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type exportApi struct {
	deps ServerDeps
}

func registerExportAPI(g *echo.Group, deps ServerDeps) {
	api := exportApi{deps: deps}

	eg := g.Group("/schedule")
	eg.GET("/export.ics", api.ics)
	eg.GET("/export.xlsx", api.xlsx)
}

// weekStart resolves the Monday anchoring the exported recurrences: the
// ?week_start= date if given, otherwise the upcoming Monday.
func (api *exportApi) weekStart(ctx echo.Context) (time.Time, error) {
	if raw := ctx.QueryParam("week_start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		return t, errors.Wrap(err, "parsing week_start")
	}
	now := time.Now()
	offset := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, offset).Truncate(24 * time.Hour), nil
}

func (api *exportApi) ics(ctx echo.Context) error {
	sessions, err := api.deps.ScheduleSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying sessions")
	}
	weekStart, err := api.weekStart(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := api.deps.Exporter.ICS(sessions, weekStart)
	if err != nil {
		return errors.Wrap(err, "exporting ICS")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="schedule.ics"`)
	return ctx.Blob(http.StatusOK, "text/calendar", []byte(out))
}

func (api *exportApi) xlsx(ctx echo.Context) error {
	sessions, err := api.deps.ScheduleSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying sessions")
	}

	f, err := api.deps.Exporter.XLSX(sessions)
	if err != nil {
		return errors.Wrap(err, "exporting XLSX")
	}
	defer func() { _ = f.Close() }()

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="schedule.xlsx"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response())
}
