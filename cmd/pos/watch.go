package main

import (
	"encoding/json"
	"fmt"
	"time"

	"pos/internal/client"
	"pos/internal/generated/servers"
	"pos/internal/pkg/wire"

	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		fallbackDelay time.Duration
		pollInterval  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the order board live",
		Long: `Follow the order board over the server socket.

When the socket cannot be opened, or drops once open, the board is read once
over REST after the fallback delay. Set --poll to keep reading it at that
interval instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			w := client.NewWatcher(c)
			w.FallbackDelay = fallbackDelay
			w.PollInterval = pollInterval
			w.OnFallback = func(error) {
				a.printf("Live updates unavailable, reading the board over REST.\n")
			}

			return w.Watch(cmd.Context(), a.printUpdate)
		},
	}

	cmd.Flags().DurationVar(&fallbackDelay, "fallback-delay", client.DefaultFallbackDelay, "wait before reading over REST when the socket fails")
	cmd.Flags().DurationVar(&pollInterval, "poll", 0, "keep polling at this interval after a fallback (0 reads once)")
	return cmd
}

func (a *app) printUpdate(u client.Update) error {
	switch u.Event {
	case wire.EventProducts:
		var products []servers.Product
		if err := json.Unmarshal(u.Data, &products); err != nil {
			return err
		}
		a.printf("Menu: %d products\n", len(products))
	case wire.EventOrders:
		var orders []servers.Order
		if err := json.Unmarshal(u.Data, &orders); err != nil {
			return err
		}
		a.printf("Board: %d orders%s\n", len(orders), boardSummary(orders))
	case wire.EventNewOrder:
		var o servers.Order
		if err := json.Unmarshal(u.Data, &o); err != nil {
			return err
		}
		a.printf("New order #%d: table %d, %s, %s\n", o.OrderId, o.TableNumber, o.CustomerName, moneyFloat(o.Total))
	case wire.EventOrderUpdated:
		var p wire.OrderUpdatedPayload
		if err := json.Unmarshal(u.Data, &p); err != nil {
			return err
		}
		a.printf("Order #%d: %s -> %s\n", p.OrderID, p.OldStatus, p.NewStatus)
	case wire.EventOrderDeleted:
		var p wire.OrderDeletedPayload
		if err := json.Unmarshal(u.Data, &p); err != nil {
			return err
		}
		a.printf("Order #%d deleted\n", p.OrderID)
	}
	return nil
}

// boardSummary renders counts per status, for example " (2 pending, 1 ready)".
func boardSummary(orders []servers.Order) string {
	if len(orders) == 0 {
		return ""
	}
	counts := make(map[servers.OrderStatus]int)
	for _, o := range orders {
		counts[o.Status]++
	}

	summary := ""
	for _, s := range []servers.OrderStatus{servers.Pending, servers.Preparing, servers.Ready, servers.Delivered} {
		if counts[s] == 0 {
			continue
		}
		if summary != "" {
			summary += ", "
		}
		summary += fmt.Sprintf("%d %s", counts[s], s)
	}
	return " (" + summary + ")"
}
