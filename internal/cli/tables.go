package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/restomate/poscli/internal/models"
)

// Tables manages the dining room layout:
//
//	tables              — list tables
//	tables add          — create a table interactively
//	tables occupy <id>  — mark a table occupied
//	tables free <id>    — mark a table free
//	tables delete <id>
func (a *App) Tables(ctx context.Context, args []string) error {
	if len(args) == 0 {
		tables, err := a.api.ListTables(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tCAPACITY\tOCCUPIED")
		for _, t := range tables {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", t.ID, t.Name, t.Capacity, yesNo(t.IsOccupied))
		}
		return w.Flush()
	}

	switch args[0] {
	case "add":
		name, err := getSimpleText(a.reader, "Table name", os.Stdout)
		if err != nil {
			return err
		}
		capacity, err := GetInt(a.reader, "Capacity", os.Stdout)
		if err != nil {
			return err
		}
		t, err := a.api.CreateTable(ctx, models.TableCreate{Name: name, Capacity: int(capacity)})
		if err != nil {
			return err
		}
		fmt.Printf("Created table %d: %s\n", t.ID, t.Name)
		return nil
	case "occupy", "free":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		t, err := a.api.SetTableOccupied(ctx, id, args[0] == "occupy")
		if err != nil {
			return err
		}
		fmt.Printf("Table %s occupied: %s\n", t.Name, yesNo(t.IsOccupied))
		return nil
	case "delete":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		if err := a.api.DeleteTable(ctx, id); err != nil {
			return err
		}
		printlnFn("Table deleted")
		return nil
	case "help":
		printlnFn("tables | add | occupy <id> | free <id> | delete <id>")
		return nil
	default:
		return fmt.Errorf("unknown tables action %q", args[0])
	}
}
