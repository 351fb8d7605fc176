package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/restomate/poscli/internal/models"
)

// Categories manages product categories:
//
//	categories              — list
//	categories add          — create interactively
//	categories rename <id>  — change a category's name
//	categories delete <id>
func (a *App) Categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		categories, err := a.api.ListCategories(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
		}
		return w.Flush()
	}

	switch args[0] {
	case "add":
		name, err := getSimpleText(a.reader, "Category name", os.Stdout)
		if err != nil {
			return err
		}
		description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
		if err != nil {
			return err
		}
		c, err := a.api.CreateCategory(ctx, models.CategoryCreate{Name: name, Description: description})
		if err != nil {
			return err
		}
		fmt.Printf("Created category %d: %s\n", c.ID, c.Name)
		return nil
	case "rename":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		name, err := getSimpleText(a.reader, "New name", os.Stdout)
		if err != nil {
			return err
		}
		c, err := a.api.UpdateCategory(ctx, id, models.CategoryUpdate{Name: &name})
		if err != nil {
			return err
		}
		fmt.Printf("Category %d renamed to %s\n", c.ID, c.Name)
		return nil
	case "delete":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		if err := a.api.DeleteCategory(ctx, id); err != nil {
			return err
		}
		printlnFn("Category deleted")
		return nil
	case "help":
		printlnFn("categories | add | rename <id> | delete <id>")
		return nil
	default:
		return fmt.Errorf("unknown categories action %q", args[0])
	}
}
