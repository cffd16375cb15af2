package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/resumeportal/internal/client/client"
	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/common"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

var (
	ErrNoResume        = errors.New("no resume on file")
	ErrStudentNotFound = errors.New("student not found")
)

// Review is what staff attach to a student's resume.
type Review struct {
	StaffResume string
	Comments    string
}

// ResumeService wraps the profile and resume calls for the CLI.
type ResumeService interface {
	MyProfile(ctx context.Context) (*models.Student, error)
	SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	ResubmitResume(ctx context.Context) (*models.Student, error)
	CommentResume(ctx context.Context, comments string) (*models.Resume, error)
	ReviewResume(ctx context.Context, studentEmail string, r Review) (*models.Resume, error)
	CurrentResume() *models.Resume
}

type resumeService struct {
	client  client.Client
	session Session
	log     logging.Logger
}

func NewResumeService(c client.Client, s Session, log logging.Logger) ResumeService {
	return &resumeService{client: c, session: s, log: log}
}

func (r *resumeService) MyProfile(ctx context.Context) (*models.Student, error) {
	return r.client.GetProfile(ctx)
}

func (r *resumeService) SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	return r.client.AddProfile(ctx, p)
}

// ListStudents is admin-only. Non-admins get common.ErrForbidden without a
// request being sent.
func (r *resumeService) ListStudents(ctx context.Context) ([]models.Student, error) {
	if !r.session.IsAdmin(ctx) {
		return nil, common.ErrForbidden
	}
	return r.client.GetProfiles(ctx)
}

// student returns the cached record, fetching it once if nothing is cached.
func (r *resumeService) student(ctx context.Context) (*models.Student, error) {
	if s := r.client.Student(); s != nil {
		return s, nil
	}
	return r.client.GetProfile(ctx)
}

func (r *resumeService) ResubmitResume(ctx context.Context) (*models.Student, error) {
	s, err := r.student(ctx)
	if err != nil {
		return nil, err
	}
	out, err := r.client.ResubmitResume(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("resubmit resume: %w", err)
	}
	r.log.Info(ctx, "resume resubmitted", "student", s.Email)
	return out, nil
}

// CommentResume sets the student's comments on their own resume.
func (r *resumeService) CommentResume(ctx context.Context, comments string) (*models.Resume, error) {
	res := r.client.Resume()
	if res.ID == "" {
		if _, err := r.client.GetProfile(ctx); err != nil {
			return nil, err
		}
		res = r.client.Resume()
	}
	if res.ID == "" {
		return nil, ErrNoResume
	}

	res.StudentComments = comments
	return r.client.UpdateResume(ctx, res)
}

// ReviewResume is the staff side: attach a document and comments to the
// resume of the student with the given e-mail and mark it reviewed.
func (r *resumeService) ReviewResume(ctx context.Context, studentEmail string, rv Review) (*models.Resume, error) {
	students, err := r.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	var target *models.Student
	for i := range students {
		if strings.EqualFold(students[i].Email, studentEmail) {
			target = &students[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, studentEmail)
	}
	if target.Resume == nil || target.Resume.ID == "" {
		return nil, ErrNoResume
	}

	res := *target.Resume
	if rv.StaffResume != "" {
		res.StaffResume = rv.StaffResume
	}
	res.AdminComments = rv.Comments
	res.Status = models.ResumeStatusReviewed

	out, err := r.client.ReviewResume(ctx, &res)
	if err != nil {
		return nil, fmt.Errorf("review resume: %w", err)
	}
	r.log.Info(ctx, "resume reviewed", "student", target.Email)
	return out, nil
}

func (r *resumeService) CurrentResume() *models.Resume {
	return r.client.Resume()
}
