package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"pos/internal/client"
	"pos/internal/generated/servers"

	"github.com/spf13/cobra"
)

func (a *app) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Build the order before checkout",
	}
	cmd.AddCommand(
		a.cartAddCmd(),
		a.cartSetCmd(),
		a.cartRemoveCmd(),
		a.cartShowCmd(),
		a.cartClearCmd(),
	)
	return cmd
}

func (a *app) cartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product; adding it again increases its quantity",
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
			products, err := c.Products(cmd.Context())
			if err != nil {
				return err
			}
			product, ok := findProduct(products, id)
			if !ok {
				return fmt.Errorf("product %d is not on the menu", id)
			}

			return a.updateCart(func(cart *client.Cart) error {
				if err := cart.Add(product, quantity); err != nil {
					return err
				}
				a.printf("Added %d x %s\n", quantity, product.Name)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "units to add")
	return cmd
}

func (a *app) cartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <productId> <quantity>",
		Short: "Set the quantity of a line; zero or less removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			return a.updateCart(func(cart *client.Cart) error {
				if err := cart.SetQuantity(id, quantity); err != nil {
					return fmt.Errorf("product %d is not in the cart", id)
				}
				return nil
			})
		},
	}
}

func (a *app) cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <productId>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.updateCart(func(cart *client.Cart) error {
				if !cart.Remove(id) {
					return fmt.Errorf("product %d is not in the cart", id)
				}
				return nil
			})
		},
	}
}

func (a *app) cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart and its total",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cart, err := a.loadCart()
			if err != nil {
				return err
			}
			return a.printCart(cart)
		},
	}
}

func (a *app) cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cart, err := a.loadCart()
			if err != nil {
				return err
			}
			cart.Clear()
			if err = a.saveCart(cart); err != nil {
				return err
			}
			a.printf("Cart cleared.\n")
			return nil
		},
	}
}

// updateCart loads the cart, applies change, saves it and prints it.
func (a *app) updateCart(change func(*client.Cart) error) error {
	cart, err := a.loadCart()
	if err != nil {
		return err
	}
	if err = change(cart); err != nil {
		return err
	}
	if err = a.saveCart(cart); err != nil {
		return err
	}
	return a.printCart(cart)
}

func (a *app) printCart(cart *client.Cart) error {
	if cart.IsEmpty() {
		a.printf("Cart is empty.\n")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tPRODUCT\tQTY\tPRICE\tSUBTOTAL\n")
	for _, l := range cart.Lines() {
		fmt.Fprintf(w, "%d\t%s %s\t%d\t%s\t%s\n", l.ProductID, l.Emoji, l.Name, l.Quantity, money(l.Price), money(l.Subtotal()))
	}
	fmt.Fprintf(w, "\t\t%d\t\t%s\n", cart.ItemCount(), money(cart.Total()))
	return w.Flush()
}

func findProduct(products []servers.Product, id int) (servers.Product, bool) {
	for _, p := range products {
		if p.Id == id {
			return p, true
		}
	}
	return servers.Product{}, false
}
