package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"dashboard"},
		Short:   "Show dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := apiClient.Dashboard(ctx)
			if err != nil {
				return fmt.Errorf("failed to get dashboard: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(d)
			}

			fmt.Fprintln(out, "FraudGuard Dashboard")
			fmt.Fprintln(out, strings.Repeat("=", 40))

			if a := d.Alerts; a != nil {
				fmt.Fprintf(out, "  Alerts:        %d total, %d active", a.Total, a.ByStatus["active"])
				if a.CriticalActive > 0 {
					fmt.Fprintf(out, " (%s)", colorize(colorRed, fmt.Sprintf("%d critical", a.CriticalActive)))
				}
				fmt.Fprintln(out)
			}

			if t := d.Transactions; t != nil {
				fmt.Fprintf(out, "  Transactions:  %d monitored, %d high risk, %d blocked\n",
					t.Total, t.ByRiskLevel["high"], t.ByStatus["blocked"])
			}

			if u := d.Users; u != nil {
				fmt.Fprintf(out, "  Users:         %d monitored, %d high risk, %d under review\n",
					u.Total, u.HighRisk, u.UnderReview)
			}

			return nil
		},
	}
}
