package cli

import (
	"context"
	"fmt"

	"github.com/restomate/poscli/internal/models"
)

// Cashier lists orders awaiting payment (ready or delivered) and settles
// them:
//
//	cashier           — list pending payments
//	cashier pay <id>  — mark an order paid
func (a *App) Cashier(ctx context.Context, args []string) error {
	if len(args) == 0 {
		orders, err := a.api.CashierPendingOrders(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tTOTAL")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", o.ID, o.OrderNumber, o.Status, o.Total)
		}
		return w.Flush()
	}

	switch args[0] {
	case "pay":
		return a.setOrderStatus(ctx, args, models.OrderStatusPaid)
	case "help":
		printlnFn("cashier | pay <id>")
		return nil
	default:
		return fmt.Errorf("unknown cashier action %q", args[0])
	}
}
