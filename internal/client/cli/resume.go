package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dmitrijs2005/resumeportal/internal/client/export"
	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/client/services"
)

func (a *App) Profile(ctx context.Context) error {
	s, err := a.resumes.MyProfile(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", s.FullName(), s.Email)
	fmt.Fprintf(a.out, "  batch: %s  course: %s  visa: %s\n", s.BatchNumber, s.StudyCourse, s.Visa)
	if p := s.Profile; p != nil {
		fmt.Fprintln(a.out, "Profile:")
		printProfile(a, p)
	} else {
		fmt.Fprintln(a.out, hintText("No profile yet, use 'addprofile'."))
	}
	printResume(a, a.resumes.CurrentResume())
	return nil
}

func printProfile(a *App, p *models.Profile) {
	rows := [][2]string{
		{"resume type", p.ResumeType},
		{"experience", p.Experience},
		{"education", p.Education},
		{"locations", p.LocationHistory},
		{"target client", p.SpecificClient},
		{"avoid client", p.SpecificClientAvoid},
	}
	for _, r := range rows {
		if r[1] != "" {
			fmt.Fprintf(a.out, "  %-14s %s\n", r[0]+":", r[1])
		}
	}
}

func printResume(a *App, r *models.Resume) {
	fmt.Fprintf(a.out, "Resume status: %s\n", r.Status)
	if r.SubmittedDate != "" {
		fmt.Fprintf(a.out, "  submitted:      %s\n", r.SubmittedDate)
	}
	if r.StudentResume != "" {
		fmt.Fprintf(a.out, "  your document:  %s\n", r.StudentResume)
	}
	if r.StaffResume != "" {
		fmt.Fprintf(a.out, "  staff document: %s\n", r.StaffResume)
	}
	if r.StudentComments != "" {
		fmt.Fprintf(a.out, "  your comments:  %s\n", r.StudentComments)
	}
	if r.AdminComments != "" {
		fmt.Fprintf(a.out, "  staff comments: %s\n", r.AdminComments)
	}
}

func (a *App) AddProfile(ctx context.Context) error {
	var p models.Profile
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Resume type (e.g. java, sdet)", &p.ResumeType},
		{"Experience", &p.Experience},
		{"Education", &p.Education},
		{"Location history", &p.LocationHistory},
		{"Preferred client", &p.SpecificClient},
		{"Client to avoid", &p.SpecificClientAvoid},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	saved, err := a.resumes.SaveProfile(ctx, &p)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, okText("Profile saved."))
	printProfile(a, saved)
	return nil
}

func (a *App) Status(ctx context.Context) error {
	r := a.resumes.CurrentResume()
	if r.ID == "" {
		if _, err := a.resumes.MyProfile(ctx); err != nil {
			return err
		}
		r = a.resumes.CurrentResume()
	}
	printResume(a, r)
	return nil
}

func (a *App) Resubmit(ctx context.Context) error {
	if _, err := a.resumes.ResubmitResume(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, okText("Resume sent for review."))
	return nil
}

func (a *App) Comment(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Comments for staff", a.out)
	if err != nil {
		return err
	}
	r, err := a.resumes.CommentResume(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, okText("Comments saved."))
	printResume(a, r)
	return nil
}

func (a *App) Students(ctx context.Context) error {
	students, err := a.resumes.ListStudents(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Fprintln(a.out, "No students.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tNAME\tBATCH\tCOURSE\tRESUME")
	for _, s := range students {
		status := models.ResumeStatusEmpty
		if s.Resume != nil && s.Resume.Status != "" {
			status = s.Resume.Status
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Email, s.FullName(), s.BatchNumber, s.StudyCourse, status)
	}
	return tw.Flush()
}

// Review attaches a staff document and comments to a student's resume.
func (a *App) Review(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Student email", a.out)
	if err != nil {
		return err
	}
	doc, err := getSimpleText(a.reader, "Staff document reference (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	comments, err := getMultiline(a.reader, "Comments for the student", a.out)
	if err != nil {
		return err
	}

	r, err := a.resumes.ReviewResume(ctx, email, services.Review{StaffResume: doc, Comments: comments})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, okText("Review saved."))
	printResume(a, r)
	return nil
}

// Export writes the student list to an .xlsx workbook.
var writeStudents = export.StudentsXLSX

// Export writes the student list to an xlsx file. A partially written file
// is removed.
func (a *App) Export(ctx context.Context) error {
	path, err := getTextWithDefault(a.reader, "Output file", "students.xlsx", a.out)
	if err != nil {
		return err
	}

	students, err := a.resumes.ListStudents(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	werr := writeStudents(f, students)
	if err := errors.Join(werr, f.Close()); err != nil {
		if rerr := os.Remove(path); rerr != nil {
			a.log.Warn(ctx, "could not remove partial export", "path", path, "error", rerr)
		}
		return fmt.Errorf("export %s: %w", path, err)
	}

	fmt.Fprintln(a.out, okText(fmt.Sprintf("Exported %d students to %s.", len(students), path)))
	return nil
}
