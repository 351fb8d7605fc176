package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/restomate/poscli/internal/client"
	"github.com/restomate/poscli/internal/models"
)

// Orders handles the orders screen:
//
//	orders [list [status]]   — list orders, optionally filtered by status
//	orders show <id>         — order details with items
//	orders new               — create an order interactively
//	orders status <id> <st>  — change an order's status
//	orders additem <id>      — add an item to an order
//	orders delitem <id> <item>
func (a *App) Orders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listOrders(ctx, "")
	}

	switch args[0] {
	case "list":
		status := ""
		if len(args) > 1 {
			status = args[1]
		}
		return a.listOrders(ctx, status)
	case "show":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		order, err := a.api.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	case "new":
		return a.newOrder(ctx)
	case "status":
		if len(args) < 3 {
			return fmt.Errorf("usage: orders status <id> <status>")
		}
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		status, err := models.ParseOrderStatus(args[2])
		if err != nil {
			return err
		}
		order, err := a.api.UpdateOrderStatus(ctx, id, status)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s\n", order.OrderNumber, order.Status)
		return nil
	case "additem":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		return a.addOrderItem(ctx, id)
	case "delitem":
		orderID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		itemID, err := parseID(args, 2)
		if err != nil {
			return err
		}
		order, err := a.api.RemoveOrderItem(ctx, orderID, itemID)
		if err != nil {
			return err
		}
		fmt.Printf("Item removed, order total is now %.2f\n", order.Total)
		return nil
	case "help":
		printlnFn("orders [list [status]] | show <id> | new | status <id> <status> | additem <id> | delitem <id> <item>")
		return nil
	default:
		return fmt.Errorf("unknown orders action %q", args[0])
	}
}

func (a *App) listOrders(ctx context.Context, status string) error {
	filter := client.OrderFilter{}
	if status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			return err
		}
		filter.Status = parsed
	}

	orders, err := a.api.ListOrders(ctx, filter)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNUMBER\tTYPE\tSTATUS\tTOTAL\tCUSTOMER/TABLE")
	for _, o := range orders {
		where := o.CustomerName
		if o.TableID != nil {
			where = fmt.Sprintf("table %d", *o.TableID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
			o.ID, o.OrderNumber, o.OrderType, o.Status, o.Total, where)
	}
	return w.Flush()
}

func printOrder(o *models.Order) {
	fmt.Printf("Order %s (%s, %s)\n", o.OrderNumber, o.OrderType, o.Status)
	if o.Table != nil {
		fmt.Printf("Table: %s\n", o.Table.Name)
	}
	if o.CustomerName != "" {
		fmt.Printf("Customer: %s %s %s\n", o.CustomerName, o.CustomerPhone, o.CustomerAddress)
	}
	for _, item := range o.Items {
		fmt.Printf("  [%d] %dx %s @ %.2f", item.ID, item.Quantity, item.Product.Name, item.Price)
		if item.Notes != "" {
			fmt.Printf(" (%s)", item.Notes)
		}
		fmt.Println()
	}
	fmt.Printf("Subtotal %.2f  Tax %.2f  Total %.2f\n", o.Subtotal, o.Tax, o.Total)
}

func (a *App) newOrder(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Order type (table/delivery)", os.Stdout)
	if err != nil {
		return err
	}
	orderType, err := models.ParseOrderType(kind)
	if err != nil {
		return err
	}

	create := models.OrderCreate{OrderType: orderType}
	if orderType == models.OrderTypeTable {
		tableID, err := GetInt(a.reader, "Table id", os.Stdout)
		if err != nil {
			return err
		}
		create.TableID = &tableID
	} else {
		if create.CustomerName, err = getSimpleText(a.reader, "Customer name", os.Stdout); err != nil {
			return err
		}
		if create.CustomerPhone, err = getSimpleText(a.reader, "Customer phone", os.Stdout); err != nil {
			return err
		}
		if create.CustomerAddress, err = getSimpleText(a.reader, "Customer address", os.Stdout); err != nil {
			return err
		}
	}

	for {
		text, err := getSimpleText(a.reader, "Product id (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if text == "" {
			break
		}
		item, err := a.promptOrderItem(text)
		if err != nil {
			printlnFn("Error:", err)
			continue
		}
		create.Items = append(create.Items, item)
	}
	if len(create.Items) == 0 {
		return fmt.Errorf("an order needs at least one item")
	}

	order, err := a.api.CreateOrder(ctx, create)
	if err != nil {
		return err
	}
	fmt.Printf("Created order %s, total %.2f\n", order.OrderNumber, order.Total)
	return nil
}

func (a *App) promptOrderItem(productText string) (models.OrderItemCreate, error) {
	var item models.OrderItemCreate
	if _, err := fmt.Sscanf(productText, "%d", &item.ProductID); err != nil {
		return item, fmt.Errorf("invalid product id %q", productText)
	}
	qty, err := GetInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return item, err
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return item, err
	}
	item.Quantity = int(qty)
	item.Notes = notes
	return item, nil
}

func (a *App) addOrderItem(ctx context.Context, orderID int64) error {
	productID, err := GetInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := GetInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	order, err := a.api.AddOrderItems(ctx, orderID, []models.OrderItemCreate{{
		ProductID: productID,
		Quantity:  int(qty),
		Notes:     notes,
	}})
	if err != nil {
		return err
	}
	fmt.Printf("Item added, order total is now %.2f\n", order.Total)
	return nil
}
