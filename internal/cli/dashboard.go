package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/restomate/poscli/internal/client"
	"github.com/restomate/poscli/internal/models"
)

// Dashboard is the default landing screen: aggregate order and table stats
// computed client-side from the list endpoints.
func (a *App) Dashboard(ctx context.Context) error {
	orders, err := a.api.ListOrders(ctx, client.OrderFilter{})
	if err != nil {
		return err
	}
	tables, err := a.api.ListTables(ctx)
	if err != nil {
		return err
	}

	byStatus := make(map[models.OrderStatus]int)
	var todayRevenue float64
	today := time.Now().Truncate(24 * time.Hour)
	for _, o := range orders {
		byStatus[o.Status]++
		if o.Status == models.OrderStatusPaid && !o.CreatedAt.Before(today) {
			todayRevenue += o.Total
		}
	}

	occupied := 0
	for _, t := range tables {
		if t.IsOccupied {
			occupied++
		}
	}

	fmt.Println("== Dashboard ==")
	fmt.Printf("Orders: %d total, %d pending, %d preparing, %d ready, %d delivered\n",
		len(orders),
		byStatus[models.OrderStatusPending],
		byStatus[models.OrderStatusPreparing],
		byStatus[models.OrderStatusReady],
		byStatus[models.OrderStatusDelivered])
	fmt.Printf("Revenue today (paid): %.2f\n", todayRevenue)
	fmt.Printf("Tables: %d/%d occupied\n", occupied, len(tables))
	return nil
}
