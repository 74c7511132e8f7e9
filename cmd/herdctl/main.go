// herdctl es el cliente de línea de comandos de la API del tracker.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"livestock-tracker/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

const defaultAPI = "http://localhost:8080"

// cli es el estado compartido por los subcomandos; el client se arma en PersistentPreRunE.
type cli struct {
	api     string
	timeout time.Duration
	out     io.Writer
	client  *httpclient.Client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := newRootCmd(os.Stdout)
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	rootCmd := &cobra.Command{
		Use:           "herdctl",
		Short:         "herdctl: rebaño, alertas y perfil desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client, err := httpclient.New(c.api, c.timeout)
			if err != nil {
				return fmt.Errorf("--api: %w", err)
			}
			c.client = client
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	api := os.Getenv("HERD_API")
	if api == "" {
		api = defaultAPI
	}
	rootCmd.PersistentFlags().StringVar(&c.api, "api", api, "URL base de la API (env HERD_API)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")

	rootCmd.AddCommand(
		livestockCmd(c),
		alertsCmd(c),
		profileCmd(c),
		dashboardCmd(c),
		mapCmd(c),
		activityCmd(c),
	)
	return rootCmd
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *cli) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
