package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sakthiprasad2004/warehouse-manager/internal/api"
	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/services"
	"github.com/sakthiprasad2004/warehouse-manager/internal/session"
)

const usageText = `Usage: warehouse [flags] <command> [args]

Commands:
  register <username> <password>       create an account and sign in
  login <username> <password>          sign in
  logout                               clear the local session
  whoami                               show the signed-in user
  dashboard                            aggregate warehouse statistics
  products [list]                      list products
  products add <name> <price> <qty>    create a product
  products update <id> <name> <price> <qty>
  products delete <id>                 delete a product (asks first)
  orders [list]                        list orders
  orders items <id>                    show an order's line items
  orders create <productId:qty> ...    create an order
  orders update <id> <productId:qty> ...
  orders status <id> <STATUS>          PENDING, SHIPPED or DELIVERED
  orders delete <id>                   delete an order (asks first)
`

// app wires the session, the API client and the workflows together for
// the command handlers.
type app struct {
	store    *session.Store
	client   *api.Client
	guard    *session.Guard
	orders   *services.OrderWorkflow
	products *services.ProductWorkflow
}

func main() {
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	sessionPath := config.sessionPath
	if sessionPath == "" {
		var err error
		if sessionPath, err = session.DefaultPath(); err != nil {
			log.Fatalf("Session path wasn't resolved due to %s", err)
		}
	}

	store, err := session.NewStore(sessionPath)
	if err != nil {
		log.Fatalf("Session store wasn't initialized due to %s", err)
	}

	client := api.NewClient(config.apiEndpoint, store)
	guard := session.NewGuard(store)

	a := &app{
		store:    store,
		client:   client,
		guard:    guard,
		orders:   services.NewOrderWorkflow(client, guard),
		products: services.NewProductWorkflow(client, guard),
	}

	if err := a.run(context.Background(), config.args); err != nil {
		if err == errUsage {
			fmt.Fprint(os.Stderr, usageText)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]

	// Signed-in commands are gated up front, before any workflow runs.
	switch command {
	case "dashboard", "products", "orders":
		if !a.guard.Authorized() {
			if err := a.guard.Require(); err != nil {
				return errors.New("not signed in; run 'warehouse login <username> <password>' first")
			}
		}
	}

	switch command {
	case "register":
		return a.registerCmd(ctx, args)
	case "login":
		return a.loginCmd(ctx, args)
	case "logout":
		return a.logoutCmd()
	case "whoami":
		return a.whoamiCmd()
	case "dashboard":
		return a.dashboardCmd(ctx)
	case "products":
		return a.productsCmd(ctx, args)
	case "orders":
		return a.ordersCmd(ctx, args)
	default:
		return errUsage
	}
}
