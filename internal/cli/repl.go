package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/restomate/poscli/internal/session"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	authorize(dest session.Destination) session.Decision

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Orders(ctx context.Context, args []string) error
	Kitchen(ctx context.Context, args []string) error
	Cashier(ctx context.Context, args []string) error
	Products(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	Tables(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
}

// runREPL reads commands from the scanner and dispatches them. Screen
// commands pass through the authorization gate first: an unauthenticated
// user is told to log in, a role without access is sent to the default
// landing screen, and while the startup restore is unresolved nothing runs.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("pos %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Screens: dashboard, orders, kitchen, cashier, products, categories, tables, users")
				printlnFn("Type a screen name for its listing, '<screen> help' for actions, 'logout' or 'exit'.")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			gate(ctx, a, session.DestDashboard, func() error { return a.Dashboard(ctx) })

		case "orders":
			gate(ctx, a, session.DestOrders, func() error { return a.Orders(ctx, args) })

		case "kitchen":
			gate(ctx, a, session.DestKitchen, func() error { return a.Kitchen(ctx, args) })

		case "cashier":
			gate(ctx, a, session.DestCashier, func() error { return a.Cashier(ctx, args) })

		case "products":
			gate(ctx, a, session.DestProducts, func() error { return a.Products(ctx, args) })

		case "categories":
			gate(ctx, a, session.DestCategories, func() error { return a.Categories(ctx, args) })

		case "tables":
			gate(ctx, a, session.DestTables, func() error { return a.Tables(ctx, args) })

		case "users":
			gate(ctx, a, session.DestUsers, func() error { return a.Users(ctx, args) })

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// gate runs a screen command according to the authorization decision.
func gate(ctx context.Context, a execIface, dest session.Destination, run func() error) {
	switch a.authorize(dest) {
	case session.DecisionWait:
		printlnFn("Session check still in progress, try again.")
	case session.DecisionLogin:
		printlnFn("Please log in first.")
	case session.DecisionDenied:
		printlnFn("You don't have permission to view that screen.")
		if err := a.Dashboard(ctx); err != nil {
			printlnFn("Error:", err)
		}
	case session.DecisionAllow:
		if err := run(); err != nil {
			printlnFn("Error:", err)
		}
	}
}
