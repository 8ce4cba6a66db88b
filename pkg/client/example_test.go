package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/pratik-mahalle/fraudguard/pkg/client"
)

// Example demonstrates basic usage of the FraudGuard client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	ctx := context.Background()

	alerts, err := c.Alerts().List(ctx, &client.AlertListOptions{
		Status: "active",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d active alerts\n", len(alerts))
}

// ExampleAlertService_Apply demonstrates triaging an alert
func ExampleAlertService_Apply() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	a, err := c.Alerts().Apply(context.Background(), "ALT-001", "block")
	if err != nil {
		if apiErr, ok := client.AsAPIError(err); ok && apiErr.IsConflict() {
			fmt.Println("Alert already handled")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Alert %s is now %s\n", a.ID, a.Status)
}

// ExampleTransactionService_List demonstrates the shared search and risk filter
func ExampleTransactionService_List() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	txs, err := c.Transactions().List(context.Background(), &client.ListOptions{
		Search: "acme",
		Risk:   "high",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, tx := range txs {
		fmt.Printf("%s %s %s\n", tx.ID, tx.Amount.String(), tx.Currency)
	}
}
