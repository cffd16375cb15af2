// Package cli provides the interactive resumeportal command-line client.
//
// NewApp wires configuration, the local session store, the HTTP API facade
// and the services; App.Run picks the landing route from any stored session
// and runs the REPL until the user exits.
//
// The prompt shows the logged-in e-mail and the current route. Which
// commands are accepted depends on that route: "/" only offers login and
// register, "/profile" the student commands, "/admin-profile" the staff
// commands. Logging out, from any route, returns to "/".
package cli
