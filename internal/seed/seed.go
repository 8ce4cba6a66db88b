// Package seed loads the alert, transaction and user records the stores
// start from.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/dashboard"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
)

//go:embed sample.yaml
var sample []byte

// Data is the full starting data set
type Data struct {
	Alerts       []*alert.Alert             `yaml:"alerts"`
	Transactions []*transaction.Transaction `yaml:"transactions"`
	Users        []*user.User               `yaml:"users"`
	Dashboard    dashboard.Datasets         `yaml:"dashboard"`
}

// Sample returns the embedded sample data set
func Sample() []byte {
	return sample
}

// Load reads the data set at path, or the embedded sample when path is empty
func Load(path string, v *validator.Validator) (*Data, error) {
	if path == "" {
		return Parse(sample, v)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw, v)
}

// Parse decodes and validates a YAML data set. Alerts without a status
// start out active.
func Parse(raw []byte, v *validator.Validator) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}

	for _, a := range d.Alerts {
		if a != nil && a.Status == "" {
			a.Status = alert.StatusActive
		}
	}

	if err := d.validate(v); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) validate(v *validator.Validator) error {
	alertIDs := make(map[string]struct{}, len(d.Alerts))
	for i, a := range d.Alerts {
		if a == nil {
			return fmt.Errorf("alert %d: empty record", i)
		}
		if err := v.Check(a); err != nil {
			return fmt.Errorf("alert %s: %w", a.ID, err)
		}
		if a.Timestamp.IsZero() {
			return fmt.Errorf("alert %s: timestamp is required", a.ID)
		}
		if err := unique(alertIDs, a.ID); err != nil {
			return fmt.Errorf("alert %w", err)
		}
	}

	txIDs := make(map[string]struct{}, len(d.Transactions))
	for i, t := range d.Transactions {
		if t == nil {
			return fmt.Errorf("transaction %d: empty record", i)
		}
		if err := v.Check(t); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.Timestamp.IsZero() {
			return fmt.Errorf("transaction %s: timestamp is required", t.ID)
		}
		if err := unique(txIDs, t.ID); err != nil {
			return fmt.Errorf("transaction %w", err)
		}
	}

	userIDs := make(map[string]struct{}, len(d.Users))
	for i, u := range d.Users {
		if u == nil {
			return fmt.Errorf("user %d: empty record", i)
		}
		if err := v.Check(u); err != nil {
			return fmt.Errorf("user %s: %w", u.ID, err)
		}
		if u.RegistrationDate.IsZero() {
			return fmt.Errorf("user %s: registrationDate is required", u.ID)
		}
		if err := unique(userIDs, u.ID); err != nil {
			return fmt.Errorf("user %w", err)
		}
	}

	return nil
}

func unique(seen map[string]struct{}, id string) error {
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%s: duplicate id", id)
	}
	seen[id] = struct{}{}
	return nil
}
