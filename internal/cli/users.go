package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/restomate/poscli/internal/models"
)

// Users manages staff accounts (admin only):
//
//	users                  — list users
//	users add              — create a user interactively
//	users role <id>        — change a user's role
//	users activate <id>
//	users deactivate <id>
//	users delete <id>
func (a *App) Users(ctx context.Context, args []string) error {
	if len(args) == 0 {
		users, err := a.api.ListUsers(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tUSERNAME\tFULL NAME\tROLE\tACTIVE")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName, u.Role, yesNo(u.IsActive))
		}
		return w.Flush()
	}

	switch args[0] {
	case "add":
		username, err := getSimpleText(a.reader, "Username", os.Stdout)
		if err != nil {
			return err
		}
		email, err := getSimpleText(a.reader, "Email", os.Stdout)
		if err != nil {
			return err
		}
		fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
		if err != nil {
			return err
		}
		roleText, err := getSimpleText(a.reader, "Role (admin/waiter/kitchen/cashier)", os.Stdout)
		if err != nil {
			return err
		}
		role, err := models.ParseRole(roleText)
		if err != nil {
			return err
		}
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		u, err := a.api.CreateUser(ctx, models.UserCreate{
			Username: username,
			Email:    email,
			FullName: fullName,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created user %d: %s (%s)\n", u.ID, u.Username, u.Role)
		return nil
	case "role":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		roleText, err := getSimpleText(a.reader, "New role (admin/waiter/kitchen/cashier)", os.Stdout)
		if err != nil {
			return err
		}
		role, err := models.ParseRole(roleText)
		if err != nil {
			return err
		}
		u, err := a.api.UpdateUser(ctx, id, models.UserUpdate{Role: &role})
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", u.Username, u.Role)
		return nil
	case "activate", "deactivate":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		active := args[0] == "activate"
		u, err := a.api.UpdateUser(ctx, id, models.UserUpdate{IsActive: &active})
		if err != nil {
			return err
		}
		fmt.Printf("%s active: %s\n", u.Username, yesNo(u.IsActive))
		return nil
	case "delete":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		if err := a.api.DeleteUser(ctx, id); err != nil {
			return err
		}
		printlnFn("User deleted")
		return nil
	case "help":
		printlnFn("users | add | role <id> | activate <id> | deactivate <id> | delete <id>")
		return nil
	default:
		return fmt.Errorf("unknown users action %q", args[0])
	}
}
