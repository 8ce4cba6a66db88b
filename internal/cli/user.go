package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pratik-mahalle/fraudguard/pkg/client"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Search monitored users",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserGetCmd())
	cmd.AddCommand(newUserHistoryCmd())
	cmd.AddCommand(newUserSummaryCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	var opts client.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := apiClient.Users().List(context.Background(), &opts)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(users)
			}

			t := NewTable("ID", "NAME", "EMAIL", "RISK", "STATUS", "FLAGGED")
			for _, u := range users {
				t.AddRow(
					u.ID,
					truncate(u.Name, 24),
					truncate(u.Email, 32),
					formatSeverity(u.RiskLevel),
					formatStatus(u.Status),
					fmt.Sprintf("%d/%d", u.FlaggedTransactions, u.TotalTransactions),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "match email, name or user ID")
	cmd.Flags().StringVar(&opts.Risk, "risk", "", "risk filter: all, high, medium, low")

	return cmd
}

func newUserGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := apiClient.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(u)
			}

			fmt.Fprintf(out, "ID:           %s\n", u.ID)
			fmt.Fprintf(out, "Name:         %s\n", u.Name)
			fmt.Fprintf(out, "Email:        %s\n", u.Email)
			fmt.Fprintf(out, "Registered:   %s\n", u.RegistrationDate.Format("2006-01-02"))
			fmt.Fprintf(out, "Risk:         %s (%d)\n", formatSeverity(u.RiskLevel), u.RiskScore)
			fmt.Fprintf(out, "Status:       %s\n", formatStatus(u.Status))
			fmt.Fprintf(out, "Transactions: %d (%d flagged)\n", u.TotalTransactions, u.FlaggedTransactions)
			fmt.Fprintf(out, "Volume:       %s\n", u.TotalAmount.StringFixed(2))
			fmt.Fprintf(out, "Devices:      %d\n", u.Devices)
			fmt.Fprintf(out, "Locations:    %s\n", strings.Join(u.Locations, ", "))
			fmt.Fprintf(out, "Last Active:  %s\n", u.LastActivity.Format("2006-01-02 15:04:05"))
			if len(u.Flags) > 0 {
				fmt.Fprintf(out, "Flags:        %s\n", strings.Join(u.Flags, ", "))
			}
			return nil
		},
	}
}

func newUserHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show a user's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := apiClient.Users().History(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user history: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(history)
			}

			t := NewTable("DATE", "AMOUNT", "RISK")
			for _, p := range history {
				t.AddRow(p.Date.Format("2006-01-02"), p.Amount.StringFixed(2), strconv.Itoa(p.Risk))
			}
			t.Render()
			return nil
		},
	}
}

func newUserSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show user summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := apiClient.Users().Summary(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get user summary: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(summary)
			}

			fmt.Fprintf(out, "Total:        %d\n", summary.Total)
			fmt.Fprintf(out, "High risk:    %d\n", summary.HighRisk)
			fmt.Fprintf(out, "Under review: %d\n", summary.UnderReview)
			fmt.Fprintf(out, "Verified:     %d\n", summary.Verified)
			return nil
		},
	}
}
