package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert is a fraud alert awaiting or past triage
type Alert struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Severity      string     `json:"severity"` // critical, high, medium, low
	Status        string     `json:"status"`   // active, under_review, resolved
	RiskScore     int        `json:"riskScore"`
	TransactionID string     `json:"transactionId"`
	UserID        string     `json:"userId"`
	Timestamp     time.Time  `json:"timestamp"`
	Actions       []string   `json:"actions"`
	LastAction    string     `json:"lastAction,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// AlertPartition groups alerts by status
type AlertPartition struct {
	Active      []Alert `json:"active"`
	UnderReview []Alert `json:"underReview"`
	Resolved    []Alert `json:"resolved"`
}

// AlertSummary holds alert counts
type AlertSummary struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"byStatus"`
	BySeverity     map[string]int `json:"bySeverity"`
	CriticalActive int            `json:"criticalActive"`
}

// AlertCount is the size of one severity/status cell
type AlertCount struct {
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Count    int    `json:"count"`
}

// Transaction is a monitored payment
type Transaction struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Sender    string          `json:"sender"`
	Receiver  string          `json:"receiver"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	RiskScore int             `json:"riskScore"`
	RiskLevel string          `json:"riskLevel"`
	Status    string          `json:"status"` // blocked, under_review, approved
	Flags     []string        `json:"flags"`
	Location  string          `json:"location"`
	Device    string          `json:"device"`
	IP        string          `json:"ip"`
}

// TransactionSummary holds transaction counts and totals per currency
type TransactionSummary struct {
	Total         int                        `json:"total"`
	ByRiskLevel   map[string]int             `json:"byRiskLevel"`
	ByStatus      map[string]int             `json:"byStatus"`
	TotalAmount   map[string]decimal.Decimal `json:"totalAmount"`
	BlockedAmount map[string]decimal.Decimal `json:"blockedAmount"`
	FlaggedCount  int                        `json:"flaggedCount"`
}

// HistoryPoint is one sample of a user's transaction history
type HistoryPoint struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Risk   int             `json:"risk"`
}

// User is a monitored account holder
type User struct {
	ID                  string          `json:"id"`
	Email               string          `json:"email"`
	Name                string          `json:"name"`
	RegistrationDate    time.Time       `json:"registrationDate"`
	RiskScore           int             `json:"riskScore"`
	RiskLevel           string          `json:"riskLevel"`
	Status              string          `json:"status"` // flagged, under_review, verified
	TotalTransactions   int             `json:"totalTransactions"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	FlaggedTransactions int             `json:"flaggedTransactions"`
	Devices             int             `json:"devices"`
	Locations           []string        `json:"locations"`
	LastActivity        time.Time       `json:"lastActivity"`
	Flags               []string        `json:"flags"`
	TransactionHistory  []HistoryPoint  `json:"transactionHistory"`
}

// UserSummary holds user counts
type UserSummary struct {
	Total       int            `json:"total"`
	HighRisk    int            `json:"highRisk"`
	UnderReview int            `json:"underReview"`
	Verified    int            `json:"verified"`
	ByRiskLevel map[string]int `json:"byRiskLevel"`
	ByStatus    map[string]int `json:"byStatus"`
}

// Dashboard is the overview served at /dashboard. Chart datasets are
// passed through untyped.
type Dashboard struct {
	Datasets     map[string]interface{} `json:"datasets"`
	Alerts       *AlertSummary          `json:"alerts"`
	Transactions *TransactionSummary    `json:"transactions"`
	Users        *UserSummary           `json:"users"`
}

// HealthResponse represents the health probe payload
type HealthResponse struct {
	Status string `json:"status"`
	Alerts *int   `json:"alerts,omitempty"`
}

// ListOptions holds the shared search and risk filter
type ListOptions struct {
	Search string // case-insensitive substring match
	Risk   string // all, high, medium, low
}

// list is the server's list payload
type list[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}
