// Package services contains application services for the resumeportal client.
// This file defines the authentication service: credential checks, login and
// registration against the API, the role-based landing route and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/resumeportal/internal/client/client"
	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

// Route is a client-side location. Only three are reachable from the login
// flow.
type Route string

const (
	RouteRoot         Route = "/"
	RouteProfile      Route = "/profile"
	RouteAdminProfile Route = "/admin-profile"
)

// Session is what the services read from and do to the session manager.
type Session interface {
	IsLoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	UserDetails(ctx context.Context) (*models.Claims, error)
	Logout(ctx context.Context) error
}

// EmailMemory remembers the last e-mail used for a successful login.
type EmailMemory interface {
	LastEmail(ctx context.Context) (string, error)
	SetLastEmail(ctx context.Context, email string) error
}

// ValidationError reports credentials rejected before any request was sent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid credentials: %s", strings.Join(e.Fields, ", "))
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login / Register: validate locally, call the API, return the route to
//     show next. A *ValidationError means no request was made.
//   - Landing: route for a freshly started client.
//   - Logout: drop the session (local only).
//   - WhoAmI: claims of the current token.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (Route, error)
	Register(ctx context.Context, creds models.Credentials) (Route, error)
	Landing(ctx context.Context) Route
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.Claims, error)
	LastEmail(ctx context.Context) string
}

type authService struct {
	client   client.Client
	session  Session
	emails   EmailMemory
	validate *validator.Validate
	log      logging.Logger
}

func NewAuthService(c client.Client, s Session, emails EmailMemory, log logging.Logger) AuthService {
	return &authService{
		client:   c,
		session:  s,
		emails:   emails,
		validate: validator.New(),
		log:      log,
	}
}

func (a *authService) check(v any) error {
	err := a.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, strings.ToLower(fe.Field()))
	}
	return ve
}

// Login requires non-empty email and password; no format check, the backend
// decides whether the account exists.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (Route, error) {
	if err := a.check(creds); err != nil {
		return "", err
	}

	if _, err := a.client.Login(ctx, creds); err != nil {
		a.log.Warn(ctx, "login failed", "email", creds.Email, "error", err)
		return "", fmt.Errorf("login: %w", err)
	}
	a.log.Info(ctx, "login successful", "email", creds.Email)

	a.remember(ctx, creds.Email)
	return a.home(ctx), nil
}

func (a *authService) Register(ctx context.Context, creds models.Credentials) (Route, error) {
	if err := a.check(models.RegistrationOf(creds)); err != nil {
		return "", err
	}

	if _, err := a.client.Register(ctx, creds); err != nil {
		a.log.Warn(ctx, "registration failed", "email", creds.Email, "error", err)
		return "", fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "registration successful", "email", creds.Email)

	a.remember(ctx, creds.Email)
	return a.home(ctx), nil
}

func (a *authService) remember(ctx context.Context, email string) {
	if err := a.emails.SetLastEmail(ctx, email); err != nil {
		a.log.Warn(ctx, "could not remember login email", "error", err)
	}
}

func (a *authService) home(ctx context.Context) Route {
	if a.session.IsAdmin(ctx) {
		return RouteAdminProfile
	}
	return RouteProfile
}

func (a *authService) Landing(ctx context.Context) Route {
	if !a.session.IsLoggedIn(ctx) {
		return RouteRoot
	}
	return a.home(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) WhoAmI(ctx context.Context) (*models.Claims, error) {
	return a.session.UserDetails(ctx)
}

func (a *authService) LastEmail(ctx context.Context) string {
	email, err := a.emails.LastEmail(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not read last login email", "error", err)
		return ""
	}
	return email
}
