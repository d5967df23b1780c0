package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"pos/internal/generated/servers"

	"github.com/spf13/cobra"
)

func (a *app) menuCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List the products on the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			products, err := c.Products(cmd.Context())
			if err != nil {
				return err
			}

			products = filterCategory(products, category)
			if len(products) == 0 {
				a.printf("No products.\n")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tPRODUCT\tCATEGORY\tPRICE\n")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", p.Id, p.Emoji, p.Name, p.Category, moneyFloat(p.Price))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show this category (Bebidas, Comidas, Postres)")
	return cmd
}

// filterCategory keeps the products of category. An empty category keeps all.
func filterCategory(products []servers.Product, category string) []servers.Product {
	if category == "" {
		return products
	}
	filtered := make([]servers.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(string(p.Category), category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
