package main

import (
	"fmt"
	"net/http"
	"net/url"

	"livestock-tracker/internal/domain/alerts"

	"github.com/spf13/cobra"
)

type alertsPage struct {
	Items       []alerts.AlertResponse `json:"items"`
	UnreadCount int                    `json:"unread_count"`
	HasUnread   bool                   `json:"has_unread"`
}

func alertsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Ver y marcar alertas",
	}
	cmd.AddCommand(alertsListCmd(c), alertsReadCmd(c), alertsReadAllCmd(c))
	return cmd
}

func alertsListCmd(c *cli) *cobra.Command {
	var query, typ, view string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar alertas",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "q", query)
			setIf(q, "type", typ)
			setIf(q, "view", view)

			var page alertsPage
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/alerts", q, nil, &page); err != nil {
				return fmt.Errorf("alerts list: %w", err)
			}

			c.printf("%d unread\n", page.UnreadCount)
			if len(page.Items) == 0 {
				c.printf("No alerts found.\n")
				return nil
			}
			printAlerts(c, page.Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "texto libre (animal o mensaje)")
	cmd.Flags().StringVar(&typ, "type", "", "boundary | movement | battery | offline | all")
	cmd.Flags().StringVar(&view, "view", "all", "all | unread | read")
	return cmd
}

func printAlerts(c *cli, items []alerts.AlertResponse) {
	tw := c.table()
	_, _ = fmt.Fprintln(tw, "ID\tANIMAL\tTYPE\tMESSAGE\tWHEN\tREAD")
	for _, a := range items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.AnimalName, a.Type, a.Message, a.Timestamp, yesNo(a.Read))
	}
	_ = tw.Flush()
}

func alertsReadCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "read ID",
		Short: "Marcar una alerta como leída",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client.DoJSON(cmd.Context(), http.MethodPost, "/alerts/"+url.PathEscape(args[0])+"/read", nil, nil, nil); err != nil {
				return fmt.Errorf("alerts read: %w", err)
			}
			c.printf("Alert %s marked as read\n", args[0])
			return nil
		},
	}
}

func alertsReadAllCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Marcar todas las alertas como leídas",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res struct {
				Marked int `json:"marked"`
			}
			if err := c.client.DoJSON(cmd.Context(), http.MethodPost, "/alerts/read-all", nil, nil, &res); err != nil {
				return fmt.Errorf("alerts read-all: %w", err)
			}
			c.printf("%d alerts marked as read\n", res.Marked)
			return nil
		},
	}
}
