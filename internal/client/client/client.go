package client

import (
	"context"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
)

// Client is the API gateway facade in front of the resume backend.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error)
	Register(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error)
	Profile(ctx context.Context) (*models.Student, error)
	AddProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetProfile(ctx context.Context) (*models.Student, error)
	GetProfiles(ctx context.Context) ([]models.Student, error)
	ResubmitResume(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateResume(ctx context.Context, resume *models.Resume) (*models.Resume, error)
	// ReviewResume posts like UpdateResume but does not touch the cache.
	ReviewResume(ctx context.Context, resume *models.Resume) (*models.Resume, error)

	// Student and Resume return the last fetched copies.
	Student() *models.Student
	Resume() *models.Resume

	Close() error
}
