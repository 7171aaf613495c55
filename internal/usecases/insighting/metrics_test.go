package insighting

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alikitto/ad-dash/internal/domain"
)

func TestSafeNumber(t *testing.T) {
	text := "7.25"

	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{name: "nil", value: nil, want: 0},
		{name: "numeric string", value: "12.50", want: 12.5},
		{name: "padded string", value: " 3 ", want: 3},
		{name: "non numeric string", value: "abc", want: 0},
		{name: "empty string", value: "", want: 0},
		{name: "float", value: 1.5, want: 1.5},
		{name: "int", value: 42, want: 42},
		{name: "int64", value: int64(9), want: 9},
		{name: "json number", value: json.Number("2.5"), want: 2.5},
		{name: "string pointer", value: &text, want: 7.25},
		{name: "nil string pointer", value: (*string)(nil), want: 0},
		{name: "bool", value: true, want: 0},
		{name: "map", value: map[string]any{"a": 1}, want: 0},
		{name: "NaN", value: math.NaN(), want: 0},
		{name: "Inf string", value: "Inf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNumber(tt.value))
		})
	}
}

func TestSumLeadActions(t *testing.T) {
	actions := []domain.Action{
		{ActionType: "onsite_conversion.lead_signal", Value: "3"},
		{ActionType: "link_click", Value: "40"},
		{ActionType: "offsite.lead_signal.v2", Value: 2.9},
		{ActionType: "lead_signal", Value: nil},
	}

	reversed := make([]domain.Action, len(actions))
	for i := range actions {
		reversed[len(actions)-1-i] = actions[i]
	}

	assert.Equal(t, 5, SumLeadActions(actions, "lead_signal"))
	assert.Equal(t, SumLeadActions(actions, "lead_signal"), SumLeadActions(reversed, "lead_signal"))
	assert.Equal(t, 0, SumLeadActions(nil, "lead_signal"))
	assert.Equal(t, 0, SumLeadActions([]domain.Action{}, "lead_signal"))
	assert.Equal(t, 0, SumLeadActions(actions, ""))
}

func TestDeriveCPL(t *testing.T) {
	assert.Equal(t, 0.0, DeriveCPL(100, 0))
	assert.Equal(t, 0.0, DeriveCPL(0, 0))
	assert.Equal(t, 0.0, DeriveCPL(100, -1))
	assert.InDelta(t, 4.1666, DeriveCPL(12.5, 3), 0.0001)
	assert.Equal(t, 25.0, DeriveCPL(100, 4))
}

func TestDeriveCTRLink(t *testing.T) {
	assert.Equal(t, 0.0, DeriveCTRLink(10, 0))
	assert.Equal(t, 2.5, DeriveCTRLink(25, 1000))
	assert.Equal(t, 0.0, DeriveCTRLink(0, 1000))
}
