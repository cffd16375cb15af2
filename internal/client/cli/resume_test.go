package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/client/services"
	"github.com/dmitrijs2005/resumeportal/internal/common"
)

type fakeResumes struct {
	student    *models.Student
	profileErr error
	profiles   int

	savedProfile *models.Profile

	students    []models.Student
	studentsErr error

	resubmitted bool
	comment     string

	reviewEmail string
	review      services.Review

	current *models.Resume
}

func (f *fakeResumes) MyProfile(context.Context) (*models.Student, error) {
	f.profiles++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if f.student.Resume != nil {
		f.current = f.student.Resume
	}
	return f.student, nil
}
func (f *fakeResumes) SaveProfile(_ context.Context, p *models.Profile) (*models.Profile, error) {
	f.savedProfile = p
	out := *p
	out.ID = "p1"
	return &out, nil
}
func (f *fakeResumes) ListStudents(context.Context) ([]models.Student, error) {
	return f.students, f.studentsErr
}
func (f *fakeResumes) ResubmitResume(context.Context) (*models.Student, error) {
	f.resubmitted = true
	return f.student, nil
}
func (f *fakeResumes) CommentResume(_ context.Context, c string) (*models.Resume, error) {
	f.comment = c
	return &models.Resume{ID: "r1", Status: models.ResumeStatusSubmitted, StudentComments: c}, nil
}
func (f *fakeResumes) ReviewResume(_ context.Context, email string, r services.Review) (*models.Resume, error) {
	f.reviewEmail, f.review = email, r
	return &models.Resume{ID: "r1", Status: models.ResumeStatusReviewed, AdminComments: r.Comments}, nil
}
func (f *fakeResumes) CurrentResume() *models.Resume {
	if f.current == nil {
		return models.NewResume()
	}
	r := *f.current
	return &r
}

func TestProfile_PrintsStudentProfileAndResume(t *testing.T) {
	rs := &fakeResumes{student: &models.Student{
		FirstName: "Ann", LastName: "Lee", Email: "ann@b.com", BatchNumber: "12",
		Profile: &models.Profile{ResumeType: "java", Experience: "3y"},
		Resume:  &models.Resume{ID: "r1", Status: models.ResumeStatusSubmitted, StudentResume: "doc-1"},
	}}
	a, out := newTestApp(&fakeAuth{}, rs, "")

	require.NoError(t, a.Profile(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Ann Lee <ann@b.com>")
	assert.Contains(t, s, "resume type:")
	assert.Contains(t, s, "java")
	assert.NotContains(t, s, "education:")
	assert.Contains(t, s, "Resume status: submitted")
	assert.Contains(t, s, "your document:  doc-1")
}

func TestProfile_NoProfileHint(t *testing.T) {
	rs := &fakeResumes{student: &models.Student{FirstName: "Ann", Email: "ann@b.com"}}
	a, out := newTestApp(&fakeAuth{}, rs, "")

	require.NoError(t, a.Profile(context.Background()))
	assert.Contains(t, out.String(), "No profile yet")
	assert.Contains(t, out.String(), "Resume status: empty")
}

func TestAddProfile(t *testing.T) {
	rs := &fakeResumes{}
	a, out := newTestApp(&fakeAuth{}, rs, "java\n3 years\nBSc\nNYC, DC\nAcme\nGlobex\n")

	require.NoError(t, a.AddProfile(context.Background()))
	assert.Equal(t, &models.Profile{
		ResumeType: "java", Experience: "3 years", Education: "BSc",
		LocationHistory: "NYC, DC", SpecificClient: "Acme", SpecificClientAvoid: "Globex",
	}, rs.savedProfile)
	assert.Contains(t, out.String(), "Profile saved.")
}

func TestStatus_FetchesOnlyWhenNothingCached(t *testing.T) {
	rs := &fakeResumes{student: &models.Student{
		Email:  "ann@b.com",
		Resume: &models.Resume{ID: "r1", Status: models.ResumeStatusReviewed, AdminComments: "good"},
	}}
	a, out := newTestApp(&fakeAuth{}, rs, "")

	require.NoError(t, a.Status(context.Background()))
	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, 1, rs.profiles)
	assert.Contains(t, out.String(), "Resume status: reviewed")
	assert.Contains(t, out.String(), "staff comments: good")
}

func TestResubmitAndComment(t *testing.T) {
	rs := &fakeResumes{student: &models.Student{Email: "ann@b.com"}}
	a, out := newTestApp(&fakeAuth{}, rs, "line one\nline two\n\n")

	require.NoError(t, a.Resubmit(context.Background()))
	assert.True(t, rs.resubmitted)

	require.NoError(t, a.Comment(context.Background()))
	assert.Equal(t, "line one\nline two", rs.comment)
	assert.Contains(t, out.String(), "Resume sent for review.")
	assert.Contains(t, out.String(), "Comments saved.")
}

func TestStudents(t *testing.T) {
	rs := &fakeResumes{students: []models.Student{
		{FirstName: "Ann", LastName: "Lee", Email: "ann@b.com", BatchNumber: "12", StudyCourse: "Java",
			Resume: &models.Resume{Status: models.ResumeStatusSubmitted}},
		{FirstName: "Bob", Email: "bob@b.com"},
	}}
	a, out := newTestApp(&fakeAuth{}, rs, "")

	require.NoError(t, a.Students(context.Background()))
	s := out.String()
	assert.Contains(t, s, "EMAIL")
	assert.Contains(t, s, "ann@b.com")
	assert.Contains(t, s, "submitted")
	assert.Contains(t, s, "bob@b.com")
	assert.Contains(t, s, "empty")

	rs.studentsErr = common.ErrForbidden
	require.ErrorIs(t, a.Students(context.Background()), common.ErrForbidden)

	rs.studentsErr, rs.students = nil, nil
	out.Reset()
	require.NoError(t, a.Students(context.Background()))
	assert.Contains(t, out.String(), "No students.")
}

func TestReview(t *testing.T) {
	rs := &fakeResumes{}
	a, out := newTestApp(&fakeAuth{}, rs, "ann@b.com\ndoc-9\nLooks good\n\n")

	require.NoError(t, a.Review(context.Background()))
	assert.Equal(t, "ann@b.com", rs.reviewEmail)
	assert.Equal(t, services.Review{StaffResume: "doc-9", Comments: "Looks good"}, rs.review)
	assert.Contains(t, out.String(), "Resume status: reviewed")
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	rs := &fakeResumes{students: []models.Student{{Email: "ann@b.com"}, {Email: "bob@b.com"}}}
	a, out := newTestApp(&fakeAuth{}, rs, path+"\n")

	require.NoError(t, a.Export(context.Background()))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
	assert.Contains(t, out.String(), "Exported 2 students")
}

func TestExport_WriteFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	rs := &fakeResumes{students: []models.Student{{Email: "ann@b.com"}}}
	a, out := newTestApp(&fakeAuth{}, rs, path+"\n")

	orig := writeStudents
	writeStudents = func(w io.Writer, _ []models.Student) error {
		_, _ = io.WriteString(w, "PK partial")
		return errors.New("disk full")
	}
	t.Cleanup(func() { writeStudents = orig })

	err := a.Export(context.Background())
	require.ErrorContains(t, err, "disk full")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, out.String(), "Exported")
}

func TestExport_ForbiddenWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")
	rs := &fakeResumes{studentsErr: common.ErrForbidden}
	a, _ := newTestApp(&fakeAuth{}, rs, path+"\n")

	require.ErrorIs(t, a.Export(context.Background()), common.ErrForbidden)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
