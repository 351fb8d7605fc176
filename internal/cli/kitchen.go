package cli

import (
	"context"
	"fmt"

	"github.com/restomate/poscli/internal/models"
)

// Kitchen shows the preparation queue (pending and preparing orders) and
// moves orders through it:
//
//	kitchen               — list the queue
//	kitchen prepare <id>  — start preparing an order
//	kitchen ready <id>    — mark an order ready for delivery
func (a *App) Kitchen(ctx context.Context, args []string) error {
	if len(args) == 0 {
		orders, err := a.api.KitchenOrders(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("[%d] %s (%s)\n", o.ID, o.OrderNumber, o.Status)
			for _, item := range o.Items {
				fmt.Printf("    %dx %s", item.Quantity, item.Product.Name)
				if item.Notes != "" {
					fmt.Printf(" (%s)", item.Notes)
				}
				fmt.Println()
			}
		}
		return nil
	}

	switch args[0] {
	case "prepare":
		return a.setOrderStatus(ctx, args, models.OrderStatusPreparing)
	case "ready":
		return a.setOrderStatus(ctx, args, models.OrderStatusReady)
	case "help":
		printlnFn("kitchen | prepare <id> | ready <id>")
		return nil
	default:
		return fmt.Errorf("unknown kitchen action %q", args[0])
	}
}

func (a *App) setOrderStatus(ctx context.Context, args []string, status models.OrderStatus) error {
	id, err := parseID(args, 1)
	if err != nil {
		return err
	}
	order, err := a.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}
	fmt.Printf("Order %s is now %s\n", order.OrderNumber, order.Status)
	return nil
}
