package main

import (
	"fmt"
	"net/http"
	"net/url"

	"livestock-tracker/internal/domain/livestock"

	"github.com/spf13/cobra"
)

func livestockCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "livestock",
		Aliases: []string{"herd"},
		Short:   "Listar y registrar animales",
	}
	cmd.AddCommand(livestockListCmd(c), livestockAddCmd(c), livestockShowCmd(c), livestockStatusCmd(c))
	return cmd
}

func livestockListCmd(c *cli) *cobra.Command {
	var query, typ, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar el rebaño (filtros combinados con AND)",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "q", query)
			setIf(q, "type", typ)
			setIf(q, "status", status)

			var animals []livestock.AnimalResponse
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/livestock", q, nil, &animals); err != nil {
				return fmt.Errorf("livestock list: %w", err)
			}
			if len(animals) == 0 {
				c.printf("No animals found.\n")
				return nil
			}

			tw := c.table()
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tTYPE\tAGE\tTAG\tSTATUS\tLAST SEEN")
			for _, a := range animals {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.Name, a.Type.Label(), orDash(a.Age), a.TagID, a.Status.Label(), a.LastSeen)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "texto libre sobre el nombre")
	cmd.Flags().StringVar(&typ, "type", "", "cow | sheep | goat | all")
	cmd.Flags().StringVar(&status, "status", "", "normal | alert | outside | all")
	return cmd
}

type addRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Age       string   `json:"age"`
	TagID     string   `json:"tag_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func livestockAddCmd(c *cli) *cobra.Command {
	var (
		req      addRequest
		lat, lng float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registrar un animal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lat") != cmd.Flags().Changed("lng") {
				return fmt.Errorf("livestock add: --lat and --lng go together")
			}
			if cmd.Flags().Changed("lat") {
				req.Latitude, req.Longitude = &lat, &lng
			}

			var a livestock.AnimalResponse
			if err := c.client.DoJSON(cmd.Context(), http.MethodPost, "/livestock", nil, req, &a); err != nil {
				return fmt.Errorf("livestock add: %w", err)
			}
			c.printf("Added %s (%s) with id %s\n", a.Name, a.Type.Label(), a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "nombre (requerido)")
	cmd.Flags().StringVar(&req.Type, "type", string(livestock.TypeCow), "cow | sheep | goat")
	cmd.Flags().StringVar(&req.Age, "age", "", "edad, texto libre")
	cmd.Flags().StringVar(&req.TagID, "tag", "", "id del tag (requerido)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitud")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitud")
	return cmd
}

func livestockShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Ver un animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var a livestock.AnimalResponse
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/livestock/"+url.PathEscape(args[0]), nil, nil, &a); err != nil {
				return fmt.Errorf("livestock show: %w", err)
			}

			tw := c.table()
			_, _ = fmt.Fprintf(tw, "ID\t%s\n", a.ID)
			_, _ = fmt.Fprintf(tw, "Name\t%s\n", a.Name)
			_, _ = fmt.Fprintf(tw, "Type\t%s\n", a.Type.Label())
			_, _ = fmt.Fprintf(tw, "Age\t%s\n", orDash(a.Age))
			_, _ = fmt.Fprintf(tw, "Tag\t%s\n", a.TagID)
			_, _ = fmt.Fprintf(tw, "Status\t%s\n", a.Status.Label())
			_, _ = fmt.Fprintf(tw, "Last seen\t%s\n", a.LastSeen)
			if a.Latitude != nil && a.Longitude != nil {
				_, _ = fmt.Fprintf(tw, "Position\t%.4f, %.4f\n", *a.Latitude, *a.Longitude)
			} else {
				_, _ = fmt.Fprintln(tw, "Position\t-")
			}
			return tw.Flush()
		},
	}
}

func livestockStatusCmd(c *cli) *cobra.Command {
	var status, lastSeen string

	cmd := &cobra.Command{
		Use:   "status ID",
		Short: "Aplicar un cambio de estado externo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"status": status, "last_seen": lastSeen}
			var a livestock.AnimalResponse
			if err := c.client.DoJSON(cmd.Context(), http.MethodPut, "/livestock/"+url.PathEscape(args[0])+"/status", nil, body, &a); err != nil {
				return fmt.Errorf("livestock status: %w", err)
			}
			c.printf("%s is now %s\n", a.Name, a.Status.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "normal | alert | outside")
	cmd.Flags().StringVar(&lastSeen, "last-seen", "", "etiqueta (default \"Just now\")")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
