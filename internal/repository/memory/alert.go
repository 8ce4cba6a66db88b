package memory

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
)

// AlertRepository keeps alerts in memory. Alerts are never added or removed
// after construction; only their status changes.
type AlertRepository struct {
	alerts *collection[*alert.Alert]
}

func cloneAlert(a *alert.Alert) *alert.Alert { return a.Clone() }

func alertID(a *alert.Alert) string { return a.ID }

// NewAlertRepository builds a repository holding copies of alerts in the
// given order. Duplicate or empty ids are rejected.
func NewAlertRepository(alerts []*alert.Alert) (alert.Repository, error) {
	c, err := newCollection(alerts, alertID, cloneAlert)
	if err != nil {
		return nil, err
	}
	return &AlertRepository{alerts: c}, nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	a, ok := r.alerts.get(id, cloneAlert)
	if !ok {
		return nil, errors.NotFoundErr("Alert", alert.ErrNotFound)
	}
	return a, nil
}

func (r *AlertRepository) List(ctx context.Context) ([]*alert.Alert, error) {
	return r.alerts.list(cloneAlert), nil
}

func (r *AlertRepository) Update(ctx context.Context, id string, fn func(*alert.Alert) error) (*alert.Alert, error) {
	r.alerts.mu.Lock()
	defer r.alerts.mu.Unlock()

	i, ok := r.alerts.index[id]
	if !ok {
		return nil, errors.NotFoundErr("Alert", alert.ErrNotFound)
	}

	// fn works on a copy so a failed update leaves the stored alert intact
	working := r.alerts.items[i].Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.alerts.items[i] = working

	return working.Clone(), nil
}

func (r *AlertRepository) Count(ctx context.Context) (int, error) {
	return r.alerts.len(), nil
}
