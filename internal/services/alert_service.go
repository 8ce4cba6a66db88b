package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	apperrors "github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/metrics"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/tracing"
)

// Transition results recorded in metrics
const (
	resultApplied  = "applied"
	resultRejected = "rejected"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
)

// AlertService implements alert.Service
type AlertService struct {
	repo   alert.Repository
	logger *logger.Logger
	now    func() time.Time
}

// NewAlertService creates a new alert service
func NewAlertService(repo alert.Repository, log *logger.Logger) alert.Service {
	return &AlertService{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves alerts matching the filter in collection order
func (s *AlertService) List(ctx context.Context, filter alert.Filter) ([]*alert.Alert, error) {
	ctx, span := tracing.StartSpan(ctx, "alert.list",
		tracing.Search(filter.Query.Search),
		tracing.RiskFilter(string(filter.Query.Risk)),
	)
	defer span.End()

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.ValidationError(fmt.Sprintf("Unknown alert status %q", filter.Status), nil)
	}
	if filter.Severity != "" && !filter.Severity.IsValid() {
		return nil, apperrors.ValidationError(fmt.Sprintf("Unknown alert severity %q", filter.Severity), nil)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	out := make([]*alert.Alert, 0, len(all))
	for _, a := range all {
		if filter.Matches(a) {
			out = append(out, a)
		}
	}
	span.SetAttributes(tracing.ResultCount(len(out)))

	return out, nil
}

// ApplyAction transitions an active alert. Alerts that are already under
// review or resolved are rejected with an invalid transition error.
func (s *AlertService) ApplyAction(ctx context.Context, id string, action alert.Action) (*alert.Alert, error) {
	ctx, span := tracing.StartSpan(ctx, "alert.apply_action",
		tracing.AlertID(id),
		tracing.Action(string(action)),
	)
	defer span.End()

	log := s.logger.WithFields(map[string]interface{}{
		"alert_id": id,
		"action":   action,
	})

	if !action.IsValid() {
		metrics.RecordAlertTransition(string(action), resultInvalid)
		err := apperrors.InvalidInput(fmt.Sprintf("Unknown alert action %q", action), alert.ErrUnknownAction)
		tracing.RecordError(span, err)
		return nil, err
	}

	var from alert.Status
	updated, err := s.repo.Update(ctx, id, func(a *alert.Alert) error {
		from = a.Status
		return alert.Transition(a, action, s.now())
	})
	if err != nil {
		tracing.RecordError(span, err)
		switch {
		case errors.Is(err, alert.ErrNotFound):
			metrics.RecordAlertTransition(string(action), resultNotFound)
			return nil, err
		case errors.Is(err, alert.ErrInvalidTransition):
			metrics.RecordAlertTransition(string(action), resultRejected)
			log.With("status", from).Warn("Alert action rejected")
			return nil, apperrors.InvalidTransition(
				fmt.Sprintf("Alert %s is %s; only active alerts accept actions", id, from), err)
		default:
			log.ErrorWithErr(err, "Failed to apply alert action")
			return nil, err
		}
	}

	metrics.RecordAlertTransition(string(action), resultApplied)
	span.SetAttributes(tracing.Status(string(updated.Status)))

	log.WithFields(map[string]interface{}{
		"from": from,
		"to":   updated.Status,
	}).Info("Alert action applied")

	return updated, nil
}

// Partition splits alerts by status
func (s *AlertService) Partition(ctx context.Context) (*alert.Partition, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return alert.PartitionByStatus(all), nil
}

// CountBySeverityAndStatus counts alerts in one severity/status cell
func (s *AlertService) CountBySeverityAndStatus(ctx context.Context, severity alert.Severity, status alert.Status) (int, error) {
	if !severity.IsValid() {
		return 0, apperrors.ValidationError(fmt.Sprintf("Unknown alert severity %q", severity), nil)
	}
	if !status.IsValid() {
		return 0, apperrors.ValidationError(fmt.Sprintf("Unknown alert status %q", status), nil)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return alert.CountBySeverityAndStatus(all, severity, status), nil
}

// GetSummary gets aggregate alert counts
func (s *AlertService) GetSummary(ctx context.Context) (*alert.Summary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return alert.Summarize(all), nil
}
