package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/generated/servers"

	"github.com/spf13/cobra"
)

func (a *app) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Work the order board",
	}
	cmd.AddCommand(
		a.ordersListCmd(),
		a.ordersGetCmd(),
		a.ordersAdvanceCmd(),
		a.ordersStatusCmd(),
		a.ordersDeleteCmd(),
	)
	return cmd
}

func (a *app) ordersListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, optionally only those in one status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			orders, err := c.Orders(cmd.Context(), status)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				a.printf("No orders.\n")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ORDER\tTABLE\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tPLACED\n")
			for _, o := range orders {
				fmt.Fprintf(w, "#%d\t%d\t%s\t%d\t%s\t%s\t%s\n",
					o.OrderId, o.TableNumber, o.CustomerName, itemCount(o), moneyFloat(o.Total), o.Status,
					o.Timestamp.Local().Format(time.Kitchen))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "pending, preparing, ready or delivered")
	return cmd
}

func (a *app) ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <orderId>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			o, err := c.Order(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printOrder(o)
		},
	}
}

func (a *app) ordersAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <orderId>",
		Short: "Move an order to the next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			o, err := c.Order(cmd.Context(), id)
			if err != nil {
				return err
			}

			current, err := order.ParseStatus(string(o.Status))
			if err != nil {
				return err
			}
			next, ok := current.Next()
			if !ok {
				return fmt.Errorf("order #%d is already %s", id, current)
			}

			updated, err := c.UpdateStatus(cmd.Context(), id, next.String())
			if err != nil {
				return err
			}
			a.printf("Order #%d: %s -> %s\n", id, current, updated.Status)
			return nil
		},
	}
}

func (a *app) ordersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <orderId> <status>",
		Short: "Set the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			updated, err := c.UpdateStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			a.printf("Order #%d is now %s\n", id, updated.Status)
			return nil
		},
	}
}

func (a *app) ordersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <orderId>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			deleted, err := c.DeleteOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			a.printf("Order #%d deleted (table %d, %s)\n", deleted.OrderId, deleted.TableNumber, deleted.CustomerName)
			return nil
		},
	}
}

func (a *app) printOrder(o servers.Order) error {
	a.printf("Order #%d  table %d  %s\n", o.OrderId, o.TableNumber, o.CustomerName)
	a.printf("Status: %s\n", o.Status)
	a.printf("Placed: %s\n", o.Timestamp.Local().Format(time.DateTime))
	if o.UpdatedAt != nil {
		a.printf("Updated: %s\n", o.UpdatedAt.Local().Format(time.DateTime))
	}
	if o.Notes != "" {
		a.printf("Notes: %s\n", o.Notes)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tPRODUCT\tQTY\tPRICE\n")
	for _, item := range o.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", item.ProductId, item.Name, item.Quantity, moneyFloat(item.Price))
	}
	fmt.Fprintf(w, "\tTotal\t\t%s\n", moneyFloat(o.Total))
	return w.Flush()
}

func itemCount(o servers.Order) int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
