package exportsvc

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/earseneau1/course-scheduler/core/schedule"
)

const xlsxSheet = "Schedule"

// XLSX renders the whole week (masters and repeats) as a time-slot grid:
// one column per day, one row per snap quantum. Callers own closing the
// returned file.
func (e *Exporter) XLSX(sessions []schedule.Session) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, errors.Wrap(err, "creating sheet")
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "dropping default sheet")
	}

	if err = f.SetCellValue(xlsxSheet, "A1", "Time"); err != nil {
		return nil, err
	}
	for i, day := range schedule.Days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err = f.SetCellValue(xlsxSheet, cell, string(day)); err != nil {
			return nil, err
		}
	}

	// time gutter: one row per quantum
	span := (e.grid.EndHour - e.grid.StartHour) * 60
	rows := span / e.grid.SnapQuantum
	for slot := 0; slot < rows; slot++ {
		cell, _ := excelize.CoordinatesToCellName(1, slot+2)
		if err = f.SetCellValue(xlsxSheet, cell, e.fmt.FormatClockTime(slot*e.grid.SnapQuantum)); err != nil {
			return nil, err
		}
	}

	for _, s := range sessions {
		col := 0
		for i, day := range schedule.Days {
			if day == s.Day {
				col = i + 2
				break
			}
		}
		if col == 0 {
			continue
		}
		row := s.StartTime/e.grid.SnapQuantum + 2
		cell, _ := excelize.CoordinatesToCellName(col, row)
		label := fmt.Sprintf("%s  %s - %s",
			e.summary(s), e.fmt.FormatClockTime(s.StartTime), e.fmt.FormatClockTime(s.End()))
		if s.RepeatPattern.Valid {
			label += fmt.Sprintf(" [%s]", s.RepeatPattern.String)
		}
		if err = f.SetCellValue(xlsxSheet, cell, label); err != nil {
			return nil, err
		}
	}

	if err = f.SetColWidth(xlsxSheet, "A", "G", 24); err != nil {
		return nil, err
	}
	return f, nil
}
