package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actionRequest struct {
	Action string `json:"action" validate:"required,oneof=block review resolve"`
}

type payment struct {
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
	Score  int             `json:"riskScore" validate:"min=0,max=100"`
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := New()

	errs := v.Validate(actionRequest{Action: "escalate"})
	require.Len(t, errs, 1)
	assert.Equal(t, "action", errs[0].Field)
	assert.Equal(t, "oneof", errs[0].Tag)
	assert.Equal(t, "action must be one of [block review resolve]", errs[0].Message)

	assert.Empty(t, v.Validate(actionRequest{Action: "review"}))
}

func TestValidator_DecimalBounds(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		in      payment
		wantErr bool
	}{
		{name: "zero amount", in: payment{Amount: decimal.Zero, Score: 0}},
		{name: "positive amount", in: payment{Amount: decimal.RequireFromString("2500.00"), Score: 95}},
		{name: "negative amount", in: payment{Amount: decimal.RequireFromString("-1"), Score: 10}, wantErr: true},
		{name: "score above range", in: payment{Amount: decimal.NewFromInt(1), Score: 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Check(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
