package main

import (
	"github.com/spf13/cobra"
)

func (a *app) checkoutCmd() *cobra.Command {
	var (
		name  string
		table int
		notes string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Send the cart as a new order and empty it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := a.loadCart()
			if err != nil {
				return err
			}
			body, err := cart.Checkout(name, table, notes)
			if err != nil {
				return err
			}

			c, err := a.client()
			if err != nil {
				return err
			}
			created, err := c.CreateOrder(cmd.Context(), body)
			if err != nil {
				return err
			}

			cart.Clear()
			if err = a.saveCart(cart); err != nil {
				return err
			}
			a.printf("Order #%d created for table %d (%s)\n", created.OrderId, table, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "customer name")
	cmd.Flags().IntVarP(&table, "table", "t", 0, "table number")
	cmd.Flags().StringVar(&notes, "notes", "", "kitchen notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}
