package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

type activityEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	SubjectID  string    `json:"subject_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

func activityCmd(c *cli) *cobra.Command {
	var (
		limit int
		types string
		query string
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Ver la actividad reciente (más reciente primero)",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			setIf(q, "types", types)
			setIf(q, "q", query)

			var events []activityEvent
			if err := c.client.DoJSON(cmd.Context(), http.MethodGet, "/activity", q, nil, &events); err != nil {
				return fmt.Errorf("activity: %w", err)
			}
			if len(events) == 0 {
				c.printf("No activity yet.\n")
				return nil
			}

			tw := c.table()
			_, _ = fmt.Fprintln(tw, "WHEN\tTYPE\tSUBJECT\tSUMMARY")
			for _, e := range events {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					e.OccurredAt.Local().Format(time.DateTime), e.Type, orDash(e.SubjectID), e.Summary)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "máximo de eventos (1-200)")
	cmd.Flags().StringVar(&types, "types", "", "tipos separados por coma (LIVESTOCK_ADDED,...)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "texto libre sobre el resumen")
	return cmd
}
