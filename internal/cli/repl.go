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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Matches(ctx context.Context) error
	MyMatches(ctx context.Context) error
	CreateMatch(ctx context.Context) error
	CompleteMatch(ctx context.Context) error
	Tournaments(ctx context.Context) error
	JoinTournament(ctx context.Context) error
	LeaveTournament(ctx context.Context) error
	ChallongeStatus(ctx context.Context) error
	ChallongeConnect(ctx context.Context) error
	ChallongeCallback(ctx context.Context) error
	ChallongeRefresh(ctx context.Context) error
	ChallongeDisconnect(ctx context.Context) error
	AdminUsers(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Planar Standard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - whoami         — show the current user
//	  - matches        — list recent matches
//	  - mymatches      — list the current user's matches
//	  - creatematch    — record a new match
//	  - completematch  — record a match result
//	  - tournaments    — list Challonge tournaments
//	  - join | leave   — join or leave a tournament
//	  - challonge      — show the Challonge account link
//	  - connect        — start the Challonge OAuth handshake
//	  - callback       — finish the Challonge OAuth handshake
//	  - refresh        — refresh the Challonge token
//	  - disconnect     — unlink the Challonge account
//	  - users          — list all users (admin only)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("planar> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, matches, mymatches, creatematch, completematch, tournaments, join, leave, challonge, connect, callback, refresh, disconnect, logout, exit")
				if a.isAdmin() {
					printlnFn("Admin commands: users")
				}
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "matches":
			_ = a.Matches(ctx)

		case "mymatches":
			_ = a.MyMatches(ctx)

		case "creatematch":
			_ = a.CreateMatch(ctx)

		case "completematch":
			_ = a.CompleteMatch(ctx)

		case "tournaments":
			_ = a.Tournaments(ctx)

		case "join":
			_ = a.JoinTournament(ctx)

		case "leave":
			_ = a.LeaveTournament(ctx)

		case "challonge":
			_ = a.ChallongeStatus(ctx)

		case "connect":
			_ = a.ChallongeConnect(ctx)

		case "callback":
			_ = a.ChallongeCallback(ctx)

		case "refresh":
			_ = a.ChallongeRefresh(ctx)

		case "disconnect":
			_ = a.ChallongeDisconnect(ctx)

		case "users":
			_ = a.AdminUsers(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
