package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pratik-mahalle/fraudguard/pkg/client"
	"github.com/spf13/cobra"
)

func newTransactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Search monitored transactions",
	}

	cmd.AddCommand(newTransactionListCmd())
	cmd.AddCommand(newTransactionGetCmd())
	cmd.AddCommand(newTransactionSummaryCmd())

	return cmd
}

func newTransactionListCmd() *cobra.Command {
	var opts client.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := apiClient.Transactions().List(context.Background(), &opts)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(txs)
			}

			t := NewTable("ID", "SENDER", "RECEIVER", "AMOUNT", "RISK", "STATUS", "FLAGS")
			for _, tx := range txs {
				t.AddRow(
					tx.ID,
					truncate(tx.Sender, 24),
					truncate(tx.Receiver, 24),
					tx.Amount.StringFixed(2)+" "+tx.Currency,
					formatSeverity(tx.RiskLevel),
					formatStatus(tx.Status),
					strconv.Itoa(len(tx.Flags)),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "match transaction ID, sender or receiver")
	cmd.Flags().StringVar(&opts.Risk, "risk", "", "risk filter: all, high, medium, low")

	return cmd
}

func newTransactionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := apiClient.Transactions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(tx)
			}

			fmt.Fprintf(out, "ID:         %s\n", tx.ID)
			fmt.Fprintf(out, "Time:       %s\n", tx.Timestamp.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Sender:     %s\n", tx.Sender)
			fmt.Fprintf(out, "Receiver:   %s\n", tx.Receiver)
			fmt.Fprintf(out, "Amount:     %s %s\n", tx.Amount.StringFixed(2), tx.Currency)
			fmt.Fprintf(out, "Risk:       %s (%d)\n", formatSeverity(tx.RiskLevel), tx.RiskScore)
			fmt.Fprintf(out, "Status:     %s\n", formatStatus(tx.Status))
			fmt.Fprintf(out, "Location:   %s\n", tx.Location)
			fmt.Fprintf(out, "Device:     %s\n", tx.Device)
			fmt.Fprintf(out, "IP:         %s\n", tx.IP)
			if len(tx.Flags) > 0 {
				fmt.Fprintf(out, "Flags:      %s\n", strings.Join(tx.Flags, ", "))
			}
			return nil
		},
	}
}

func newTransactionSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show transaction summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := apiClient.Transactions().Summary(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get transaction summary: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(summary)
			}

			fmt.Fprintf(out, "Total:   %d\n", summary.Total)
			fmt.Fprintf(out, "Flagged: %d\n", summary.FlaggedCount)

			currencies := make([]string, 0, len(summary.TotalAmount))
			for c := range summary.TotalAmount {
				currencies = append(currencies, c)
			}
			sort.Strings(currencies)

			t := NewTable("CURRENCY", "TOTAL", "BLOCKED")
			for _, c := range currencies {
				t.AddRow(c, summary.TotalAmount[c].StringFixed(2), summary.BlockedAmount[c].StringFixed(2))
			}
			t.Render()
			return nil
		},
	}
}
