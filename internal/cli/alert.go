package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pratik-mahalle/fraudguard/pkg/client"
	"github.com/spf13/cobra"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Triage fraud alerts",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertGetCmd())
	cmd.AddCommand(newAlertPartitionCmd())
	cmd.AddCommand(newAlertSummaryCmd())
	cmd.AddCommand(newAlertCountCmd())
	cmd.AddCommand(newAlertActionCmd("block", "Block the transaction and send the alert to review", "blocked"))
	cmd.AddCommand(newAlertActionCmd("review", "Send the alert to manual review", "sent to review"))
	cmd.AddCommand(newAlertActionCmd("resolve", "Resolve the alert", "resolved"))

	return cmd
}

func newAlertListCmd() *cobra.Command {
	var opts client.AlertListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := apiClient.Alerts().List(context.Background(), &opts)
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alerts)
			}
			renderAlerts(alerts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "match alert, transaction or user ID")
	cmd.Flags().StringVar(&opts.Risk, "risk", "", "risk filter: all, high, medium, low")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "filter by severity")

	return cmd
}

func renderAlerts(alerts []client.Alert) {
	t := NewTable("ID", "SEVERITY", "STATUS", "RISK", "TRANSACTION", "USER", "TITLE")
	for _, a := range alerts {
		t.AddRow(
			a.ID,
			formatSeverity(a.Severity),
			formatStatus(a.Status),
			strconv.Itoa(a.RiskScore),
			a.TransactionID,
			a.UserID,
			truncate(a.Title, 40),
		)
	}
	t.Render()
}

func newAlertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alert, err := apiClient.Alerts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get alert: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alert)
			}

			fmt.Fprintf(out, "ID:          %s\n", alert.ID)
			fmt.Fprintf(out, "Type:        %s\n", alert.Type)
			fmt.Fprintf(out, "Severity:    %s\n", formatSeverity(alert.Severity))
			fmt.Fprintf(out, "Status:      %s\n", formatStatus(alert.Status))
			fmt.Fprintf(out, "Risk Score:  %d\n", alert.RiskScore)
			fmt.Fprintf(out, "Title:       %s\n", alert.Title)
			fmt.Fprintf(out, "Transaction: %s\n", alert.TransactionID)
			fmt.Fprintf(out, "User:        %s\n", alert.UserID)
			fmt.Fprintf(out, "Raised:      %s\n", alert.Timestamp.Format("2006-01-02 15:04:05"))
			if alert.LastAction != "" {
				fmt.Fprintf(out, "Last Action: %s\n", alert.LastAction)
			}
			return nil
		},
	}
}

func newAlertPartitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partition",
		Short: "Show alerts grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := apiClient.Alerts().Partition(context.Background())
			if err != nil {
				return fmt.Errorf("failed to partition alerts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(p)
			}

			groups := []struct {
				title  string
				alerts []client.Alert
			}{
				{"Active", p.Active},
				{"Under Review", p.UnderReview},
				{"Resolved", p.Resolved},
			}
			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%d)\n", g.title, len(g.alerts))
				renderAlerts(g.alerts)
			}
			return nil
		},
	}
}

func newAlertSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show alert summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := apiClient.Alerts().Summary(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get alert summary: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(summary)
			}

			fmt.Fprintf(out, "Total:           %d\n", summary.Total)
			fmt.Fprintf(out, "Critical active: %d\n", summary.CriticalActive)
			t := NewTable("STATUS", "COUNT")
			for _, st := range []string{"active", "under_review", "resolved"} {
				t.AddRow(formatStatus(st), strconv.Itoa(summary.ByStatus[st]))
			}
			t.Render()
			return nil
		},
	}
}

func newAlertCountCmd() *cobra.Command {
	var severity, status string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count alerts with a severity and status",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := apiClient.Alerts().Count(context.Background(), severity, status)
			if err != nil {
				return fmt.Errorf("failed to count alerts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(client.AlertCount{Severity: severity, Status: status, Count: n})
			}
			fmt.Fprintln(out, n)
			return nil
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "critical", "alert severity")
	cmd.Flags().StringVar(&status, "status", "active", "alert status")

	return cmd
}

func newAlertActionCmd(action, short, done string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alert, err := apiClient.Alerts().Apply(context.Background(), args[0], action)
			if err != nil {
				if apiErr, ok := client.AsAPIError(err); ok && apiErr.IsConflict() {
					return fmt.Errorf("alert %s is not active", args[0])
				}
				return fmt.Errorf("failed to %s alert: %w", action, err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alert)
			}
			fmt.Fprintf(out, "Alert %s %s (status: %s)\n", alert.ID, done, alert.Status)
			return nil
		},
	}
}
