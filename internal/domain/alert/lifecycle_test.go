package alert

import (
	"errors"
	"testing"
	"time"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{in: "block", want: ActionBlock},
		{in: "review", want: ActionReview},
		{in: "resolve", want: ActionResolve},
		{in: "approve", want: ActionResolve},
		{in: " BLOCK ", want: ActionBlock},
		{in: "limit", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAction) {
					t.Errorf("ParseAction(%q) error = %v, want ErrUnknownAction", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAction(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    Status
		action  Action
		want    Status
		wantErr error
	}{
		{name: "block active", from: StatusActive, action: ActionBlock, want: StatusUnderReview},
		{name: "review active", from: StatusActive, action: ActionReview, want: StatusUnderReview},
		{name: "resolve active", from: StatusActive, action: ActionResolve, want: StatusResolved},
		{name: "resolve under review", from: StatusUnderReview, action: ActionResolve, wantErr: ErrInvalidTransition},
		{name: "block under review", from: StatusUnderReview, action: ActionBlock, wantErr: ErrInvalidTransition},
		{name: "review resolved", from: StatusResolved, action: ActionReview, wantErr: ErrInvalidTransition},
		{name: "unknown action", from: StatusActive, action: Action("limit"), wantErr: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Alert{ID: "ALT-001", Status: tt.from}
			err := Transition(a, tt.action, at)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Transition() error = %v, want %v", err, tt.wantErr)
				}
				if a.Status != tt.from || a.LastAction != "" || a.UpdatedAt != nil {
					t.Errorf("alert modified on failed transition: %+v", a)
				}
				return
			}

			if err != nil {
				t.Fatalf("Transition() error = %v", err)
			}
			if a.Status != tt.want {
				t.Errorf("status = %s, want %s", a.Status, tt.want)
			}
			if a.LastAction != tt.action {
				t.Errorf("lastAction = %s, want %s", a.LastAction, tt.action)
			}
			if a.UpdatedAt == nil || !a.UpdatedAt.Equal(at) {
				t.Errorf("updatedAt = %v, want %v", a.UpdatedAt, at)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	a := &Alert{
		ID:            "ALT-001",
		Severity:      SeverityCritical,
		Status:        StatusActive,
		TransactionID: "TXN-2024-001234",
		UserID:        "usuario@email.com",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter", filter: Filter{}, want: true},
		{name: "search by user", filter: Filter{Query: risk.Query{Search: "USUARIO"}}, want: true},
		{name: "search by transaction", filter: Filter{Query: risk.Query{Search: "001234"}}, want: true},
		{name: "critical only matches all", filter: Filter{Query: risk.Query{Risk: risk.FilterHigh}}, want: false},
		{name: "risk all", filter: Filter{Query: risk.Query{Risk: risk.FilterAll}}, want: true},
		{name: "status mismatch", filter: Filter{Status: StatusResolved}, want: false},
		{name: "severity match", filter: Filter{Severity: SeverityCritical}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(a); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	now := time.Now()
	a := &Alert{ID: "ALT-001", Actions: []string{"block", "review"}, UpdatedAt: &now}
	c := a.Clone()

	c.Actions[0] = "verify"
	*c.UpdatedAt = now.Add(time.Hour)

	if a.Actions[0] != "block" {
		t.Errorf("clone shares actions slice")
	}
	if !a.UpdatedAt.Equal(now) {
		t.Errorf("clone shares updatedAt")
	}
}
