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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	AddMoney(ctx context.Context) error
	Transactions(ctx context.Context) error
	Messes(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Menu(ctx context.Context) error
	Plans(ctx context.Context) error
	Announcements(ctx context.Context) error
	Feedbacks(ctx context.Context) error
	SendFeedback(ctx context.Context) error
	UploadPhoto(ctx context.Context) error
	ApplyLeave(ctx context.Context) error
	Leaves(ctx context.Context) error
	CreateAdmin(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the MealMate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current session (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — recover a password via email OTP
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — role-dependent summary
//	  - profile        — show account details
//	  - update         — change name or address
//	  - addmoney       — top up the wallet
//	  - transactions   — wallet ledger
//	  - messes         — browse the mess directory
//	  - subscribe      — subscribe to a mess
//	  - menu           — weekly menu of a mess
//	  - plans          — subscription plans
//	  - announcements  — notices from the mess
//	  - feedbacks      — ratings left by subscribers
//	  - feedback       — leave a rating
//	  - photo          — upload a mess photo (mess owners)
//	  - leave          — file an absence request
//	  - leaves         — list absence requests
//	  - createadmin    — create an admin account (admins)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mm> %s > ", statusFn()))
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
				printlnFn("Available commands: dashboard, profile, update, addmoney, transactions, messes, subscribe, menu, plans, announcements, feedbacks, feedback, photo, leave, leaves, createadmin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "addmoney":
			_ = a.AddMoney(ctx)

		case "transactions":
			_ = a.Transactions(ctx)

		case "messes":
			_ = a.Messes(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "menu":
			_ = a.Menu(ctx)

		case "plans":
			_ = a.Plans(ctx)

		case "announcements":
			_ = a.Announcements(ctx)

		case "feedbacks":
			_ = a.Feedbacks(ctx)

		case "feedback":
			_ = a.SendFeedback(ctx)

		case "photo":
			_ = a.UploadPhoto(ctx)

		case "leave":
			_ = a.ApplyLeave(ctx)

		case "leaves":
			_ = a.Leaves(ctx)

		case "createadmin":
			_ = a.CreateAdmin(ctx)

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
