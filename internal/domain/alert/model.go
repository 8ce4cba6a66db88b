package alert

import (
	"time"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
)

// Type categorizes what triggered an alert
type Type string

// Alert types
const (
	TypeHighRiskTransaction Type = "high_risk_transaction"
	TypeVelocityCheck       Type = "velocity_check"
	TypeGeolocationAnomaly  Type = "geolocation_anomaly"
	TypeFalsePositive       Type = "false_positive"
	TypeDeviceFingerprint   Type = "device_fingerprint"
)

// Severity is ordered critical > high > medium > low
type Severity string

// Alert severity levels
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists every severity, most severe first
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// IsValid reports whether s is a known severity
func (s Severity) IsValid() bool {
	return s.Rank() > 0
}

// Rank returns 4 for critical down to 1 for low, and 0 for unknown values
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Status is the lifecycle state of an alert
type Status string

// Alert status
const (
	StatusActive      Status = "active"
	StatusUnderReview Status = "under_review"
	StatusResolved    Status = "resolved"
)

// Statuses lists every status in lifecycle order
var Statuses = []Status{StatusActive, StatusUnderReview, StatusResolved}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusUnderReview, StatusResolved:
		return true
	}
	return false
}

// Alert represents a flagged event requiring operator attention
type Alert struct {
	ID            string     `json:"id" yaml:"id" validate:"required"`
	Type          Type       `json:"type" yaml:"type" validate:"required,oneof=high_risk_transaction velocity_check geolocation_anomaly false_positive device_fingerprint"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description,omitempty" yaml:"description"`
	Severity      Severity   `json:"severity" yaml:"severity" validate:"required,oneof=critical high medium low"`
	Status        Status     `json:"status" yaml:"status" validate:"required,oneof=active under_review resolved"`
	RiskScore     int        `json:"riskScore" yaml:"riskScore" validate:"min=0,max=100"`
	TransactionID string     `json:"transactionId" yaml:"transactionId"`
	UserID        string     `json:"userId" yaml:"userId"`
	Timestamp     time.Time  `json:"timestamp" yaml:"timestamp"`
	Actions       []string   `json:"actions" yaml:"actions"`
	LastAction    Action     `json:"lastAction,omitempty" yaml:"-"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" yaml:"-"`
}

// SearchFields returns the fields matched by free-text search
func (a Alert) SearchFields() []string {
	return []string{a.ID, a.TransactionID, a.UserID}
}

// RiskLevel maps the severity label onto the shared risk filter, so a
// critical alert only matches the "all" filter.
func (a Alert) RiskLevel() risk.Level {
	return risk.Level(a.Severity)
}

// Clone returns a deep copy of the alert
func (a *Alert) Clone() *Alert {
	c := *a
	if a.Actions != nil {
		c.Actions = append([]string(nil), a.Actions...)
	}
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

// Filter contains alert filtering options
type Filter struct {
	Query    risk.Query
	Status   Status
	Severity Severity
}

// Matches reports whether a satisfies every set criterion
func (f Filter) Matches(a *Alert) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Severity != "" && a.Severity != f.Severity {
		return false
	}
	return f.Query.Matches(a)
}

// Partition splits alerts by status, each list in collection order
type Partition struct {
	Active      []*Alert `json:"active"`
	UnderReview []*Alert `json:"underReview"`
	Resolved    []*Alert `json:"resolved"`
}

// Len returns the number of alerts across all three lists
func (p *Partition) Len() int {
	return len(p.Active) + len(p.UnderReview) + len(p.Resolved)
}

// Summary holds aggregate alert counts
type Summary struct {
	Total          int              `json:"total"`
	ByStatus       map[Status]int   `json:"byStatus"`
	BySeverity     map[Severity]int `json:"bySeverity"`
	CriticalActive int              `json:"criticalActive"`
}
