package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/common"
)

// Indirections over the interactive input helpers so tests can swap them.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
	getMultiline       = GetMultiline
)

var okText = color.New(color.FgGreen).SprintFunc()

// Login asks for e-mail (offering the last one used) and password, then moves
// to the route the auth service picks for the account's role.
func (a *App) Login(ctx context.Context) error {
	email, err := getTextWithDefault(a.reader, "Enter email", a.auth.LastEmail(ctx), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	route, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.router.Navigate(route)
	fmt.Fprintln(a.out, okText("Logged in."))
	return nil
}

// Register collects the sign-up form. Only e-mail, password and first name
// are required.
func (a *App) Register(ctx context.Context) error {
	var creds models.Credentials
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &creds.Email},
		{"First name", &creds.FirstName},
		{"Last name", &creds.LastName},
		{"Batch number", &creds.BatchNumber},
		{"Study course", &creds.StudyCourse},
		{"Visa status", &creds.Visa},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	creds.Password = string(password)

	route, err := a.auth.Register(ctx, creds)
	if err != nil {
		return err
	}

	a.router.Navigate(route)
	fmt.Fprintln(a.out, okText("Account created."))
	return nil
}

// Logout drops the local session. Navigation back to "/" happens through
// the session's logout event.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	c, err := a.auth.WhoAmI(ctx)
	if err != nil {
		return err
	}
	if c == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	fmt.Fprintf(a.out, "%s <%s>\n", name, c.Email)
	if c.Role != "" {
		fmt.Fprintf(a.out, "  role:    %s\n", c.Role)
	}
	if c.BatchNumber != "" {
		fmt.Fprintf(a.out, "  batch:   %s\n", c.BatchNumber)
	}
	if c.StudyCourse != "" {
		fmt.Fprintf(a.out, "  course:  %s\n", c.StudyCourse)
	}
	if c.ExpiresAt != nil {
		fmt.Fprintf(a.out, "  expires: %s\n", c.ExpiresAt.Time.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
