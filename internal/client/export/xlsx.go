// Package export writes student listings to spreadsheet files for staff.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
)

// SheetName is the single worksheet written by StudentsXLSX.
const SheetName = "Students"

var header = []any{
	"Email", "First name", "Last name", "Batch", "Course", "Visa",
	"Resume type", "Resume status", "Submitted", "Staff comments",
}

// StudentsXLSX writes one row per student, after a header row, as an .xlsx
// workbook to w.
func StudentsXLSX(w io.Writer, students []models.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range students {
		row := studentRow(s)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func studentRow(s models.Student) []any {
	var resumeType string
	if s.Profile != nil {
		resumeType = s.Profile.ResumeType
	}

	status, submitted, comments := models.ResumeStatusEmpty, "", ""
	if r := s.Resume; r != nil {
		if r.Status != "" {
			status = r.Status
		}
		submitted, comments = r.SubmittedDate, r.AdminComments
	}

	return []any{
		s.Email, s.FirstName, s.LastName, s.BatchNumber, s.StudyCourse, s.Visa,
		resumeType, status, submitted, comments,
	}
}
