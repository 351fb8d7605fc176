package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/restomate/poscli/internal/models"
)

// Products manages the menu:
//
//	products              — list products
//	products show <id>    — product details
//	products add          — create a product interactively
//	products price <id>   — change a product's price
//	products delete <id>
func (a *App) Products(ctx context.Context, args []string) error {
	if len(args) == 0 {
		products, err := a.api.ListProducts(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\n", p.ID, p.Name, p.Price, p.CategoryID)
		}
		return w.Flush()
	}

	switch args[0] {
	case "show":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		p, err := a.api.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s — %.2f (category %s)\n", p.Name, p.Price, p.Category.Name)
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		return nil
	case "add":
		name, err := getSimpleText(a.reader, "Product name", os.Stdout)
		if err != nil {
			return err
		}
		description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
		if err != nil {
			return err
		}
		price, err := GetFloat(a.reader, "Price", os.Stdout)
		if err != nil {
			return err
		}
		categoryID, err := GetInt(a.reader, "Category id", os.Stdout)
		if err != nil {
			return err
		}
		p, err := a.api.CreateProduct(ctx, models.ProductCreate{
			Name:        name,
			Description: description,
			Price:       price,
			CategoryID:  categoryID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created product %d: %s\n", p.ID, p.Name)
		return nil
	case "price":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		price, err := GetFloat(a.reader, "New price", os.Stdout)
		if err != nil {
			return err
		}
		p, err := a.api.UpdateProduct(ctx, id, models.ProductUpdate{Price: &price})
		if err != nil {
			return err
		}
		fmt.Printf("%s now costs %.2f\n", p.Name, p.Price)
		return nil
	case "delete":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		if err := a.api.DeleteProduct(ctx, id); err != nil {
			return err
		}
		printlnFn("Product deleted")
		return nil
	case "help":
		printlnFn("products | show <id> | add | price <id> | delete <id>")
		return nil
	default:
		return fmt.Errorf("unknown products action %q", args[0])
	}
}
