package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Courses(ctx context.Context) error
	Enroll(ctx context.Context, args []string) error
	Assignments(ctx context.Context, args []string) error
	MyResults(ctx context.Context) error
	Whoami(ctx context.Context) error
	Students(ctx context.Context) error
	Dashboard(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: courses, students, enrollments, dashboard, whoami, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: courses, enroll, assignments, results, whoami, logout, exit")
			default:
				printlnFn("Available commands: courses, login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "c", "courses":
			_ = a.Courses(ctx)

		case "enroll":
			_ = a.Enroll(ctx, args)

		case "assignments":
			_ = a.Assignments(ctx, args)

		case "results":
			_ = a.MyResults(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "students", "enrollments":
			_ = a.Students(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
