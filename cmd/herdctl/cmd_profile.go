package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

type profileBody struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	FarmName string `json:"farm_name"`
	Location string `json:"location"`
}

type preferences struct {
	BoundaryAlerts bool `json:"boundary_alerts"`
	BatteryAlerts  bool `json:"battery_alerts"`
	MovementAlerts bool `json:"movement_alerts"`
	DailySummary   bool `json:"daily_summary"`
}

func profileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Perfil del productor y notificaciones",
	}
	cmd.AddCommand(profileShowCmd(c), profileSetCmd(c), profileNotificationsCmd(c), profileToggleCmd(c))
	return cmd
}

func profileShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Ver el perfil",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p profileBody
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/profile", nil, nil, &p); err != nil {
				return fmt.Errorf("profile show: %w", err)
			}
			printProfile(c, p)
			return nil
		},
	}
}

func printProfile(c *cli, p profileBody) {
	tw := c.table()
	_, _ = fmt.Fprintf(tw, "Name\t%s\n", orDash(p.Name))
	_, _ = fmt.Fprintf(tw, "Phone\t%s\n", orDash(p.Phone))
	_, _ = fmt.Fprintf(tw, "Email\t%s\n", orDash(p.Email))
	_, _ = fmt.Fprintf(tw, "Farm\t%s\n", orDash(p.FarmName))
	_, _ = fmt.Fprintf(tw, "Location\t%s\n", orDash(p.Location))
	_ = tw.Flush()
}

// profileSetCmd lee el perfil actual y pisa solo los flags indicados: el PUT reemplaza todo.
func profileSetCmd(c *cli) *cobra.Command {
	var in profileBody

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Actualizar campos del perfil",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p profileBody
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/profile", nil, nil, &p); err != nil {
				return fmt.Errorf("profile set: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = in.Name
			}
			if flags.Changed("phone") {
				p.Phone = in.Phone
			}
			if flags.Changed("email") {
				p.Email = in.Email
			}
			if flags.Changed("farm") {
				p.FarmName = in.FarmName
			}
			if flags.Changed("location") {
				p.Location = in.Location
			}

			var saved profileBody
			if err := c.client.DoJSON(cmd.Context(), http.MethodPut, "/profile", nil, p, &saved); err != nil {
				return fmt.Errorf("profile set: %w", err)
			}
			printProfile(c, saved)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "nombre")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "teléfono")
	cmd.Flags().StringVar(&in.Email, "email", "", "email")
	cmd.Flags().StringVar(&in.FarmName, "farm", "", "nombre de la granja")
	cmd.Flags().StringVar(&in.Location, "location", "", "ubicación")
	return cmd
}

func profileNotificationsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Ver preferencias de notificación",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p preferences
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/profile/notifications", nil, nil, &p); err != nil {
				return fmt.Errorf("profile notifications: %w", err)
			}
			printPreferences(c, p)
			return nil
		},
	}
}

func profileToggleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "toggle SETTING",
		Short:     "Invertir una preferencia",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"boundary_alerts", "battery_alerts", "movement_alerts", "daily_summary"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var p preferences
			path := "/profile/notifications/" + url.PathEscape(args[0]) + "/toggle"
			if err := c.client.DoJSON(cmd.Context(), http.MethodPost, path, nil, nil, &p); err != nil {
				return fmt.Errorf("profile toggle: %w", err)
			}
			printPreferences(c, p)
			return nil
		},
	}
}

func printPreferences(c *cli, p preferences) {
	tw := c.table()
	_, _ = fmt.Fprintf(tw, "boundary_alerts\t%s\n", yesNo(p.BoundaryAlerts))
	_, _ = fmt.Fprintf(tw, "battery_alerts\t%s\n", yesNo(p.BatteryAlerts))
	_, _ = fmt.Fprintf(tw, "movement_alerts\t%s\n", yesNo(p.MovementAlerts))
	_, _ = fmt.Fprintf(tw, "daily_summary\t%s\n", yesNo(p.DailySummary))
	_ = tw.Flush()
}
