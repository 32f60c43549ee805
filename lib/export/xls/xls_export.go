package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.ApplicationWithJob) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Candidate", "Email", "Job", "Department", "Stage", "Response", "Source", "Applied On"}

func (i impl) ExportApplicationList(list []dbmodels.ApplicationWithJob) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.ApplicationWithJob, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Candidate"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CandidateName); err != nil {
			return row, err
		}

		// "Email"
		col++
		if err := writeColumn(f, sheet, col, row, item.CandidateEmail); err != nil {
			return row, err
		}

		// "Job"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Department"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobDepartment); err != nil {
			return row, err
		}

		// "Stage"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Stage)); err != nil {
			return row, err
		}

		// "Response"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.CandidateResponse)); err != nil {
			return row, err
		}

		// "Source"
		col++
		if err := writeColumn(f, sheet, col, row, item.Source); err != nil {
			return row, err
		}

		// "Applied On"
		col++
		if !item.AppliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return row, err
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return row, err
		}
		if err = f.SetCellValue(sheet, cell, header); err != nil {
			return row, err
		}
		if err = f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, string(rune('A'+col)), string(rune('A'+col)), 25); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func applyDataCellStyle(f *excelize.File, sheet string, fromCol, fromRow, toCol, toRow int) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	fromCell, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	toCell, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fromCell, toCell, styleID)
}
