package main

import (
	"fmt"
	"net/http"
	"net/url"

	"livestock-tracker/internal/domain/mapview"

	"github.com/spf13/cobra"
)

func mapCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Marcadores y selección del mapa",
	}
	cmd.AddCommand(mapMarkersCmd(c), mapSelectCmd(c))
	return cmd
}

func mapMarkersCmd(c *cli) *cobra.Command {
	var strategy, typ, status string

	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Listar marcadores ubicados",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "strategy", strategy)
			setIf(q, "type", typ)
			setIf(q, "status", status)

			var res mapview.MarkersResponse
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/map/markers", q, nil, &res); err != nil {
				return fmt.Errorf("map markers: %w", err)
			}

			c.printf("Center %.4f, %.4f zoom %g (%s)\n", res.View.CenterLatitude, res.View.CenterLongitude, res.View.Zoom, res.Strategy)
			tw := c.table()
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tX\tY\tFILL\tSTROKE")
			for _, m := range res.Markers {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%s\t%s\n", m.ID, m.Name, m.X, m.Y, m.Style.Fill, m.Style.Stroke)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "percent | mercator")
	cmd.Flags().StringVar(&typ, "type", "", "cow | sheep | goat | all")
	cmd.Flags().StringVar(&status, "status", "", "normal | alert | outside | all")
	return cmd
}

func mapSelectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "select ID",
		Short: "Seleccionar un animal y centrar el mapa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v mapview.ViewResponse
			if err := c.client.DoJSON(cmd.Context(), http.MethodPost, "/map/select", nil, map[string]string{"id": args[0]}, &v); err != nil {
				return fmt.Errorf("map select: %w", err)
			}
			c.printf("Centered on %.4f, %.4f zoom %g\n", v.CenterLatitude, v.CenterLongitude, v.Zoom)
			return nil
		},
	}
}
