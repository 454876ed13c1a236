package depreciation

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Model
		expectErr bool
	}{
		{"Monthly lowercase", "monthly", Monthly, false},
		{"Monthly mixed case", "Monthly", Monthly, false},
		{"Annual", "annual", Annual, false},
		{"Annual alias", "yearly", Annual, false},
		{"Heavy use hyphen", "heavy-use", HeavyUse, false},
		{"Heavy use camel", "HeavyUse", HeavyUse, false},
		{"Heavy use underscore", "heavy_use", HeavyUse, false},
		{"Surrounding spaces", "  annual  ", Annual, false},
		{"Empty", "", Monthly, true},
		{"Unknown", "straight-line", Monthly, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := ParseModel(tt.input)
			if tt.expectErr {
				if !errors.Is(err, ErrUnknownModel) {
					t.Errorf("ParseModel(%q) error = %v, expected %v", tt.input, err, ErrUnknownModel)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModel(%q) unexpected error = %v", tt.input, err)
			}
			if model != tt.expected {
				t.Errorf("ParseModel(%q) = %v, expected %v", tt.input, model, tt.expected)
			}
		})
	}
}

func TestModelTextRoundTrip(t *testing.T) {
	type payload struct {
		Model Model `json:"model"`
	}

	data, err := json.Marshal(payload{Model: HeavyUse})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"model":"heavy-use"}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var decoded payload
	if err := json.Unmarshal([]byte(`{"model":"Annual"}`), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.Model != Annual {
		t.Errorf("decoded model = %v, expected annual", decoded.Model)
	}

	if err := json.Unmarshal([]byte(`{"model":"bogus"}`), &decoded); err == nil {
		t.Error("expected error decoding unknown model")
	}

	if _, err := Model(42).MarshalText(); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("MarshalText() error = %v, expected %v", err, ErrUnknownModel)
	}
}

func TestNewRejectsUnknownModel(t *testing.T) {
	if _, err := New(Model(7), 1.0); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("New() error = %v, expected %v", err, ErrUnknownModel)
	}
}

func TestMonthlyCompoundsOnRunningValue(t *testing.T) {
	d, err := New(Monthly, 1.0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	value := 65000.0
	for period := 1; period <= 12; period++ {
		value = d.Next(period, value, 65000)
	}

	expected := 65000 * math.Pow(0.99, 12)
	if math.Abs(value-expected) > 1e-6 {
		t.Errorf("value after 12 periods = %.6f, expected %.6f", value, expected)
	}

	// The running value drives the result, not the base.
	if got := d.Next(5, 1000, 65000); math.Abs(got-990) > 1e-9 {
		t.Errorf("Next() = %v, expected 990", got)
	}
}

func TestAnnualRecomputesFromBase(t *testing.T) {
	d, err := New(Annual, 15.0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		period   int
		expected float64
	}{
		{1, 65000 * math.Pow(0.85, 1.0/12)},
		{6, 65000 * math.Pow(0.85, 0.5)},
		{12, 65000 * 0.85},
		{24, 65000 * 0.85 * 0.85},
		{72, 65000 * math.Pow(0.85, 6)},
	}

	for _, tt := range tests {
		// The running value is irrelevant; pass something unrelated.
		got := d.Next(tt.period, 1.0, 65000)
		if math.Abs(got-tt.expected) > 1e-6 {
			t.Errorf("Next(%d) = %.6f, expected %.6f", tt.period, got, tt.expected)
		}
	}
}

func TestHeavyUseMultiplierBands(t *testing.T) {
	tests := []struct {
		period   int
		expected float64
	}{
		{1, 2.0},
		{6, 2.0},
		{7, 1.5},
		{12, 1.5},
		{13, 1.2},
		{24, 1.2},
		{25, 1.0},
		{72, 1.0},
	}

	for _, tt := range tests {
		if got := HeavyUseMultiplier(tt.period); got != tt.expected {
			t.Errorf("HeavyUseMultiplier(%d) = %v, expected %v", tt.period, got, tt.expected)
		}
	}
}

func TestHeavyUseAppliesBandedRate(t *testing.T) {
	d, err := New(HeavyUse, 1.0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	value := 100000.0
	for period := 1; period <= 30; period++ {
		value = d.Next(period, value, 100000)
	}

	expected := 100000 *
		math.Pow(1-0.02, 6) *
		math.Pow(1-0.015, 6) *
		math.Pow(1-0.012, 12) *
		math.Pow(1-0.01, 6)
	if math.Abs(value-expected) > 1e-6 {
		t.Errorf("value after 30 periods = %.6f, expected %.6f", value, expected)
	}
}

func TestZeroRateKeepsValue(t *testing.T) {
	for _, model := range []Model{Monthly, Annual, HeavyUse} {
		d, err := New(model, 0)
		if err != nil {
			t.Fatalf("New(%v) error = %v", model, err)
		}
		if got := d.Next(18, 50000, 50000); got != 50000 {
			t.Errorf("%v with zero rate: Next() = %v, expected 50000", model, got)
		}
	}
}

func TestMaxRatePercentKeepsValuesNonNegative(t *testing.T) {
	tests := []struct {
		model    Model
		expected float64
	}{
		{Monthly, 100},
		{Annual, 100},
		{HeavyUse, 50},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			if got := MaxRatePercent(tt.model); got != tt.expected {
				t.Fatalf("MaxRatePercent(%v) = %v, expected %v", tt.model, got, tt.expected)
			}
			depreciator, err := New(tt.model, tt.expected)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			value := 65000.0
			for period := 1; period <= 36; period++ {
				value = depreciator.Next(period, value, 65000)
				if math.IsNaN(value) || value < 0 {
					t.Fatalf("period %d value %v", period, value)
				}
			}
		})
	}
}
