package user

import (
	"errors"
	"time"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no user has the requested id
var ErrNotFound = errors.New("user not found")

// Status is the verification state of a user profile
type Status string

// User status
const (
	StatusFlagged     Status = "flagged"
	StatusUnderReview Status = "under_review"
	StatusVerified    Status = "verified"
)

// Statuses lists every user status
var Statuses = []Status{StatusFlagged, StatusUnderReview, StatusVerified}

// HistoryPoint is one sample of a user's transaction trend
type HistoryPoint struct {
	Date   time.Time       `json:"date" yaml:"date"`
	Amount decimal.Decimal `json:"amount" yaml:"amount" validate:"gte=0"`
	Risk   int             `json:"risk" yaml:"risk" validate:"min=0,max=100"`
}

// User is a read-only risk profile
type User struct {
	ID                  string          `json:"id" yaml:"id" validate:"required"`
	Email               string          `json:"email" yaml:"email" validate:"required,email"`
	Name                string          `json:"name" yaml:"name"`
	RegistrationDate    time.Time       `json:"registrationDate" yaml:"registrationDate"`
	RiskScore           int             `json:"riskScore" yaml:"riskScore" validate:"min=0,max=100"`
	Level               risk.Level      `json:"riskLevel" yaml:"riskLevel" validate:"required,oneof=high medium low"`
	Status              Status          `json:"status" yaml:"status" validate:"required,oneof=flagged under_review verified"`
	TotalTransactions   int             `json:"totalTransactions" yaml:"totalTransactions" validate:"min=0"`
	TotalAmount         decimal.Decimal `json:"totalAmount" yaml:"totalAmount" validate:"gte=0"`
	FlaggedTransactions int             `json:"flaggedTransactions" yaml:"flaggedTransactions" validate:"min=0"`
	Devices             int             `json:"devices" yaml:"devices" validate:"min=0"`
	Locations           []string        `json:"locations" yaml:"locations"`
	LastActivity        time.Time       `json:"lastActivity" yaml:"lastActivity"`
	Flags               []string        `json:"flags" yaml:"flags"`
	TransactionHistory  []HistoryPoint  `json:"transactionHistory" yaml:"transactionHistory" validate:"dive"`
}

// SearchFields returns the fields matched by free-text search
func (u User) SearchFields() []string {
	return []string{u.Email, u.Name, u.ID}
}

// RiskLevel returns the stored risk level
func (u User) RiskLevel() risk.Level {
	return u.Level
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	c := *u
	c.Locations = append([]string(nil), u.Locations...)
	c.Flags = append([]string(nil), u.Flags...)
	c.TransactionHistory = append([]HistoryPoint(nil), u.TransactionHistory...)
	return &c
}

// Summary holds aggregate user counts
type Summary struct {
	Total       int                `json:"total"`
	HighRisk    int                `json:"highRisk"`
	UnderReview int                `json:"underReview"`
	Verified    int                `json:"verified"`
	ByRiskLevel map[risk.Level]int `json:"byRiskLevel"`
	ByStatus    map[Status]int     `json:"byStatus"`
}

// Summarize computes aggregate counts over users
func Summarize(users []*User) *Summary {
	s := &Summary{
		Total:       len(users),
		ByRiskLevel: risk.CountByLevel(users),
		ByStatus:    make(map[Status]int, len(Statuses)),
	}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	for _, u := range users {
		s.ByStatus[u.Status]++
	}
	s.HighRisk = s.ByRiskLevel[risk.LevelHigh]
	s.UnderReview = s.ByStatus[StatusUnderReview]
	s.Verified = s.ByStatus[StatusVerified]
	return s
}

// Counts flattens the summary into category names
func (s *Summary) Counts() map[string]int {
	counts := map[string]int{"total": s.Total}
	for l, n := range s.ByRiskLevel {
		counts["risk:"+string(l)] = n
	}
	for st, n := range s.ByStatus {
		counts["status:"+string(st)] = n
	}
	return counts
}
