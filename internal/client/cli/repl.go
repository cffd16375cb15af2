package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/resumeportal/internal/client/client"
	"github.com/dmitrijs2005/resumeportal/internal/client/services"
	"github.com/dmitrijs2005/resumeportal/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var (
	errText  = color.New(color.FgRed).SprintFunc()
	hintText = color.New(color.FgYellow).SprintFunc()
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	route() services.Route
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	AddProfile(ctx context.Context) error
	Students(ctx context.Context) error
	Review(ctx context.Context) error
	Export(ctx context.Context) error
	Resubmit(ctx context.Context) error
	Comment(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands available depend on the current route:
//
//	/               help, register, login, exit
//	/profile        help, whoami, profile, addprofile, status, comment,
//	                resubmit, logout, exit
//	/admin-profile  help, whoami, students, review, export, logout, exit
//
// Handler errors are printed in red and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rp %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printlnFn(helpText(a.route()))
			continue
		}

		handler, ok := commandFor(a, cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !allowed(a.route(), cmd) {
			printlnFn(hintText(deniedText(a.route())))
			continue
		}
		if err := handler(ctx); err != nil {
			printlnFn(errText(describeError(err)))
		}
	}
}

func commandFor(a execIface, cmd string) (func(context.Context) error, bool) {
	switch cmd {
	case "register":
		return a.Register, true
	case "login":
		return a.Login, true
	case "logout":
		return a.Logout, true
	case "whoami":
		return a.WhoAmI, true
	case "profile":
		return a.Profile, true
	case "addprofile":
		return a.AddProfile, true
	case "students":
		return a.Students, true
	case "review":
		return a.Review, true
	case "export":
		return a.Export, true
	case "resubmit":
		return a.Resubmit, true
	case "comment":
		return a.Comment, true
	case "status":
		return a.Status, true
	}
	return nil, false
}

var commandsByRoute = map[services.Route][]string{
	services.RouteRoot:         {"register", "login"},
	services.RouteProfile:      {"whoami", "profile", "addprofile", "status", "comment", "resubmit", "logout"},
	services.RouteAdminProfile: {"whoami", "students", "review", "export", "logout"},
}

func allowed(r services.Route, cmd string) bool {
	for _, c := range commandsByRoute[r] {
		if c == cmd {
			return true
		}
	}
	return false
}

func helpText(r services.Route) string {
	return "Available commands: " + strings.Join(append(append([]string{"help"}, commandsByRoute[r]...), "exit"), ", ")
}

func deniedText(r services.Route) string {
	switch r {
	case services.RouteRoot:
		return "Please log in first (login or register)."
	case services.RouteProfile:
		return "That command is for staff accounts."
	default:
		return "That command is not available here, type 'help'."
	}
}

// describeError turns service and transport errors into one line for the user.
func describeError(err error) string {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		if onlyCredentials(ve.Fields) {
			return "email and password are required"
		}
		return "please check: " + strings.Join(ve.Fields, ", ")
	}

	var apiErr *client.APIError
	switch {
	case errors.Is(err, common.ErrForbidden):
		return "staff access required"
	case errors.Is(err, common.ErrNoToken):
		return "not logged in, please log in"
	case errors.Is(err, client.ErrUnauthorized):
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "not authorized: " + apiErr.Message
		}
		return "not authorized, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrInvalidResponse):
		return "unexpected response from server"
	case errors.Is(err, services.ErrNoResume):
		return "no resume on file yet"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, context.Canceled):
		return "cancelled"
	}
	return err.Error()
}

func onlyCredentials(fields []string) bool {
	for _, f := range fields {
		if f != "email" && f != "password" {
			return false
		}
	}
	return len(fields) > 0
}
