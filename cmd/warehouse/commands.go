package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/sakthiprasad2004/warehouse-manager/internal/services"
	"github.com/sakthiprasad2004/warehouse-manager/internal/stats"
)

var errUsage = errors.New("usage")

// confirm asks on stdin before destructive actions.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (a *app) registerCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}

	identity, err := a.client.Register(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (#%d)\n", identity.Username, identity.ID)
	return nil
}

func (a *app) loginCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}

	identity, err := a.client.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (#%d)\n", identity.Username, identity.ID)
	return nil
}

func (a *app) logoutCmd() error {
	if err := a.store.Clear(); err != nil {
		return err
	}

	fmt.Println("Signed out")
	return nil
}

func (a *app) whoamiCmd() error {
	identity := a.store.Current()
	if identity == nil {
		return errors.New("not signed in")
	}

	fmt.Printf("%s (#%d)\n", identity.Username, identity.ID)
	return nil
}

func (a *app) dashboardCmd(ctx context.Context) error {
	if err := a.products.Reload(ctx); err != nil {
		return err
	}
	if err := a.orders.Reload(ctx); err != nil {
		return err
	}

	summary := stats.Summarize(a.products.Products(), a.orders.Orders())

	fmt.Printf("Total Products\t%d\n", summary.ProductCount)
	fmt.Printf("Total Orders\t%d\n", summary.OrderCount)
	fmt.Printf("Total Stock\t%d\n", summary.TotalStock)
	fmt.Printf("Low Stock Alert\t%d\n", summary.LowStockCount)
	fmt.Printf("Inventory Value\t%s\n", summary.InventoryValue.StringFixed(2))

	if !summary.HasData {
		fmt.Println("\nStock distribution: no data")
	} else {
		fmt.Println("\nStock distribution:")
		for _, slice := range summary.StockDistribution {
			fmt.Printf("  %s\t%d\n", slice.Name, slice.Value)
		}
	}

	fmt.Println("\nOrders by status:")
	for _, bar := range summary.StatusHistogram {
		fmt.Printf("  %s\t%d\n", bar.Status, bar.Count)
	}

	return nil
}

func (a *app) productsCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return a.listProducts(ctx)
	case "add":
		if len(args) != 4 {
			return errUsage
		}
		a.products.OpenCreate()
		a.products.SetForm(services.ProductForm{Name: args[1], Price: args[2], Quantity: args[3]})
		if err := a.products.Submit(ctx); err != nil {
			a.products.Close()
			return err
		}
		return a.listProducts(ctx)
	case "update":
		if len(args) != 5 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage
		}
		a.products.OpenEdit(models.Product{ID: id})
		a.products.SetForm(services.ProductForm{Name: args[2], Price: args[3], Quantity: args[4]})
		if err := a.products.Submit(ctx); err != nil {
			a.products.Close()
			return err
		}
		return a.listProducts(ctx)
	case "delete":
		if len(args) != 2 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage
		}
		if err := a.products.Delete(ctx, id, confirm); err != nil {
			if errors.Is(err, services.ErrDeclined) {
				fmt.Println("Cancelled")
				return nil
			}
			return err
		}
		return a.listProducts(ctx)
	default:
		return errUsage
	}
}

func (a *app) listProducts(ctx context.Context) error {
	if err := a.products.Reload(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQUANTITY\tSTOCK")
	for _, p := range a.products.Products() {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%s\n", p.ID, p.Name, p.Price, p.Quantity, stats.StockLevelOf(p.Quantity))
	}
	return w.Flush()
}

// parseLineItems parses productId:qty arguments into draft slots.
func parseLineItems(args []string) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0, len(args))
	for _, arg := range args {
		productRaw, quantityRaw, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("expected productId:quantity, got %q", arg)
		}
		productID, err := strconv.ParseInt(productRaw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id in %q", arg)
		}
		quantity, err := strconv.Atoi(quantityRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q", arg)
		}
		items = append(items, models.LineItem{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}

func (a *app) ordersCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return a.listOrders(ctx)
	case "items":
		if len(args) != 2 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage
		}
		items, err := a.orders.ViewItems(ctx, id)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRODUCT\tUNIT PRICE\tQUANTITY")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%.2f\t%d\n", item.Product.Name, item.Product.Price, item.Quantity)
		}
		return w.Flush()
	case "create":
		if len(args) < 2 {
			return errUsage
		}
		items, err := parseLineItems(args[1:])
		if err != nil {
			return err
		}
		a.orders.OpenCreate()
		for i, item := range items {
			if i > 0 {
				a.orders.AddItem()
			}
			a.orders.SetItem(i, item)
		}
		if err := a.orders.Submit(ctx); err != nil {
			a.orders.Close()
			return err
		}
		return a.listOrders(ctx)
	case "update":
		if len(args) < 3 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage
		}
		items, err := parseLineItems(args[2:])
		if err != nil {
			return err
		}
		if _, err := a.orders.OpenEdit(ctx, id); err != nil {
			return err
		}
		for i, item := range items {
			if i >= len(a.orders.Drafts()) {
				a.orders.AddItem()
			}
			a.orders.SetItem(i, item)
		}
		for len(a.orders.Drafts()) > len(items) {
			a.orders.RemoveItem(len(a.orders.Drafts()) - 1)
		}
		if err := a.orders.Submit(ctx); err != nil {
			a.orders.Close()
			return err
		}
		return a.listOrders(ctx)
	case "status":
		if len(args) != 3 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage
		}
		status := models.OrderStatus(strings.ToUpper(args[2]))
		if err := a.orders.ChangeStatus(ctx, id, status); err != nil {
			return err
		}
		return a.listOrders(ctx)
	case "delete":
		if len(args) != 2 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errUsage
		}
		if err := a.orders.Delete(ctx, id, confirm); err != nil {
			if errors.Is(err, services.ErrDeclined) {
				fmt.Println("Cancelled")
				return nil
			}
			return err
		}
		return a.listOrders(ctx)
	default:
		return errUsage
	}
}

func (a *app) listOrders(ctx context.Context) error {
	if err := a.orders.Reload(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTATUS")
	for _, o := range a.orders.Orders() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", o.ID, o.OrderDate.Format("2006-01-02 15:04"), o.Status)
	}
	return w.Flush()
}
