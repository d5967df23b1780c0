package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pos/internal/client"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyServer   = "server"
	keyCartFile = "cart-file"
)

// app carries what every subcommand needs. Settings are resolved through
// viper so flags win over POS_* environment variables.
type app struct {
	v   *viper.Viper
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}
	a.v.SetEnvPrefix("POS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "pos",
		Short:         "Restaurant POS staff client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().String(keyServer, "http://localhost:3001", "POS server url (env POS_SERVER)")
	root.PersistentFlags().String(keyCartFile, defaultCartFile(), "where the cart is kept between commands (env POS_CART_FILE)")
	_ = a.v.BindPFlag(keyServer, root.PersistentFlags().Lookup(keyServer))
	_ = a.v.BindPFlag(keyCartFile, root.PersistentFlags().Lookup(keyCartFile))

	root.AddCommand(
		a.menuCmd(),
		a.cartCmd(),
		a.checkoutCmd(),
		a.ordersCmd(),
		a.watchCmd(),
	)
	return root
}

func defaultCartFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".pos-cart.json"
	}
	return filepath.Join(dir, "pos", "cart.json")
}

func (a *app) client() (*client.Client, error) {
	return client.New(a.v.GetString(keyServer))
}

func (a *app) loadCart() (*client.Cart, error) {
	return client.LoadCart(a.v.GetString(keyCartFile))
}

func (a *app) saveCart(cart *client.Cart) error {
	return cart.Save(a.v.GetString(keyCartFile))
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func moneyFloat(f float64) string {
	return money(decimal.NewFromFloat(f))
}
