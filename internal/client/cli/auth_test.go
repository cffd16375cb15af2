package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/client/services"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

type fakeAuth struct {
	lastEmail string

	loginCreds models.Credentials
	loginRoute services.Route
	loginErr   error

	regCreds models.Credentials
	regRoute services.Route
	regErr   error

	logoutCalled bool
	logoutErr    error

	claims *models.Claims
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (services.Route, error) {
	f.loginCreds = c
	return f.loginRoute, f.loginErr
}
func (f *fakeAuth) Register(_ context.Context, c models.Credentials) (services.Route, error) {
	f.regCreds = c
	return f.regRoute, f.regErr
}
func (f *fakeAuth) Landing(context.Context) services.Route { return services.RouteRoot }
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) WhoAmI(context.Context) (*models.Claims, error) { return f.claims, nil }
func (f *fakeAuth) LastEmail(context.Context) string               { return f.lastEmail }

func newTestApp(auth services.AuthService, rs services.ResumeService, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		auth:    auth,
		resumes: rs,
		router:  newRouter(),
		reader:  rdr(input),
		out:     &out,
		log:     logging.Nop(),
	}, &out
}

// stubPassword makes getPassword return pw and records that the slice was
// handed out so tests can check it was wiped.
func stubPassword(t *testing.T, pw string) *[]byte {
	t.Helper()
	buf := []byte(pw)
	orig := getPassword
	getPassword = func(*bufio.Reader, io.Writer) ([]byte, error) { return buf, nil }
	t.Cleanup(func() { getPassword = orig })
	return &buf
}

func TestLogin_UsesLastEmailAndNavigates(t *testing.T) {
	pw := stubPassword(t, "secret")
	f := &fakeAuth{lastEmail: "a@b.com", loginRoute: services.RouteAdminProfile}
	a, out := newTestApp(f, nil, "\n")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "a@b.com", f.loginCreds.Email)
	assert.Equal(t, "secret", f.loginCreds.Password)
	assert.Equal(t, services.RouteAdminProfile, a.router.Current())
	assert.Contains(t, out.String(), "Enter email [a@b.com]")
	assert.Contains(t, out.String(), "Logged in.")
	assert.Equal(t, make([]byte, 6), *pw, "password buffer wiped")
}

func TestLogin_ErrorKeepsRoute(t *testing.T) {
	stubPassword(t, "")
	f := &fakeAuth{loginErr: &services.ValidationError{Fields: []string{"password"}}}
	a, _ := newTestApp(f, nil, "a@b.com\n")

	err := a.Login(context.Background())
	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, services.RouteRoot, a.router.Current())
}

func TestRegister_CollectsForm(t *testing.T) {
	stubPassword(t, "pw")
	f := &fakeAuth{regRoute: services.RouteProfile}
	a, out := newTestApp(f, nil, "ann@b.com\nAnn\nLee\n12\nJava\nH1B\n")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, models.Credentials{
		Email: "ann@b.com", Password: "pw", FirstName: "Ann", LastName: "Lee",
		BatchNumber: "12", StudyCourse: "Java", Visa: "H1B",
	}, f.regCreds)
	assert.Equal(t, services.RouteProfile, a.router.Current())
	assert.Contains(t, out.String(), "Account created.")
}

func TestRegister_InputError(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f, nil, "")
	require.Error(t, a.Register(context.Background()))
	assert.Empty(t, f.regCreds.Email)
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f, nil, "")
	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.Contains(t, out.String(), "Logged out.")

	f.logoutErr = errors.New("clean-fail")
	require.Error(t, a.Logout(context.Background()))
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f, nil, "")
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")

	out.Reset()
	f.claims = &models.Claims{
		Email: "a@b.com", FirstName: "Ann", Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Ann <a@b.com>")
	assert.Contains(t, out.String(), "role:    admin")
	assert.Contains(t, out.String(), "expires:")
}

func TestStatusLine(t *testing.T) {
	f := &fakeAuth{claims: &models.Claims{Email: "a@b.com"}}
	a, _ := newTestApp(f, nil, "")
	assert.Equal(t, "(/)", a.status())

	a.router.Navigate(services.RouteProfile)
	assert.Equal(t, "a@b.com (/profile)", a.status())

	f.claims = nil
	assert.Equal(t, "(/profile)", a.status())
}
