package cli

import (
	"context"
	"os"

	"github.com/restomate/poscli/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// manager, which owns the notifications for both outcomes.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	// Credential rejection is already surfaced to the user; the REPL loop
	// does not need to re-report it.
	_ = a.manager.Login(ctx, username, password)
	return nil
}

// Register creates a new account with the default non-privileged role and
// leaves the user to log in with it.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, models.UserCreate{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: password,
		Role:     models.RoleWaiter,
	})
	if err != nil {
		return err
	}

	printlnFn("Account created for", user.Username, "— you can log in now.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	return a.manager.Logout(ctx)
}
