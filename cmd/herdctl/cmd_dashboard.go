package main

import (
	"fmt"
	"net/http"
	"net/url"

	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/dashboard"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/domain/mapview"

	"github.com/spf13/cobra"
)

type dashboardPage struct {
	Summary dashboard.Summary       `json:"summary"`
	Alerts  []alerts.AlertResponse  `json:"alerts"`
	Map     mapview.MarkersResponse `json:"map"`
}

func dashboardCmd(c *cli) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Resumen del rebaño y alertas",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "strategy", strategy)

			var page dashboardPage
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/dashboard", q, nil, &page); err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}

			s := page.Summary
			c.printf("Total animals: %d\n", s.Total)
			tw := c.table()
			for _, t := range livestock.Types {
				_, _ = fmt.Fprintf(tw, "  %s\t%d\n", t.Label(), s.ByType[t])
			}
			for _, st := range livestock.Statuses {
				_, _ = fmt.Fprintf(tw, "  %s\t%d\n", st.Label(), s.ByStatus[st])
			}
			_ = tw.Flush()
			c.printf("Unread alerts: %d\n", s.UnreadAlerts)
			if s.SelectedAnimalID != "" {
				c.printf("Selected animal: %s\n", s.SelectedAnimalID)
			}
			c.printf("Animals on map: %d\n", len(page.Map.Markers))

			if len(page.Alerts) > 0 {
				c.printf("\n")
				printAlerts(c, page.Alerts)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "percent | mercator")
	return cmd
}
