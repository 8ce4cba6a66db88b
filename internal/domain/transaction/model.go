package transaction

import (
	"errors"
	"time"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction has the requested id
var ErrNotFound = errors.New("transaction not found")

// Status is the processing decision recorded on a transaction
type Status string

// Transaction status
const (
	StatusBlocked     Status = "blocked"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
)

// Statuses lists every transaction status
var Statuses = []Status{StatusBlocked, StatusUnderReview, StatusApproved}

// Transaction is a read-only P2P transfer record
type Transaction struct {
	ID        string          `json:"id" yaml:"id" validate:"required"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	Sender    string          `json:"sender" yaml:"sender" validate:"required"`
	Receiver  string          `json:"receiver" yaml:"receiver" validate:"required"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount" validate:"gte=0"`
	Currency  string          `json:"currency" yaml:"currency" validate:"required,len=3"`
	RiskScore int             `json:"riskScore" yaml:"riskScore" validate:"min=0,max=100"`
	Level     risk.Level      `json:"riskLevel" yaml:"riskLevel" validate:"required,oneof=high medium low"`
	Status    Status          `json:"status" yaml:"status" validate:"required,oneof=blocked under_review approved"`
	Flags     []string        `json:"flags" yaml:"flags"`
	Location  string          `json:"location" yaml:"location"`
	Device    string          `json:"device" yaml:"device"`
	IP        string          `json:"ip" yaml:"ip"`
}

// SearchFields returns the fields matched by free-text search
func (t Transaction) SearchFields() []string {
	return []string{t.ID, t.Sender, t.Receiver}
}

// RiskLevel returns the stored risk level
func (t Transaction) RiskLevel() risk.Level {
	return t.Level
}

// Clone returns a deep copy of the transaction
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.Flags != nil {
		c.Flags = append([]string(nil), t.Flags...)
	}
	return &c
}

// Summary holds aggregate transaction figures. Amounts are summed per currency.
type Summary struct {
	Total         int                        `json:"total"`
	ByRiskLevel   map[risk.Level]int         `json:"byRiskLevel"`
	ByStatus      map[Status]int             `json:"byStatus"`
	TotalAmount   map[string]decimal.Decimal `json:"totalAmount"`
	BlockedAmount map[string]decimal.Decimal `json:"blockedAmount"`
	FlaggedCount  int                        `json:"flaggedCount"`
}

// Summarize computes aggregate figures over transactions
func Summarize(txs []*Transaction) *Summary {
	s := &Summary{
		Total:         len(txs),
		ByRiskLevel:   risk.CountByLevel(txs),
		ByStatus:      make(map[Status]int, len(Statuses)),
		TotalAmount:   make(map[string]decimal.Decimal),
		BlockedAmount: make(map[string]decimal.Decimal),
	}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	for _, t := range txs {
		s.ByStatus[t.Status]++
		s.TotalAmount[t.Currency] = s.TotalAmount[t.Currency].Add(t.Amount)
		if t.Status == StatusBlocked {
			s.BlockedAmount[t.Currency] = s.BlockedAmount[t.Currency].Add(t.Amount)
		}
		if len(t.Flags) > 0 {
			s.FlaggedCount++
		}
	}
	return s
}

// Counts flattens the summary into category names
func (s *Summary) Counts() map[string]int {
	counts := map[string]int{
		"total":   s.Total,
		"flagged": s.FlaggedCount,
	}
	for l, n := range s.ByRiskLevel {
		counts["risk:"+string(l)] = n
	}
	for st, n := range s.ByStatus {
		counts["status:"+string(st)] = n
	}
	return counts
}
