package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate() *validator.Validate {
	v := validator.New()
	RegisterRules(v)
	return v
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1", 1, true},
		{"  2.5  ", 2.5, true},
		{"0.000000005", 0.000000005, true},
		{"12abc", 12, true},
		{".5", 0.5, true},
		{"1e-9", 1e-9, true},
		{"3.", 3, true},
		{"-4", -4, true},
		{"abc", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRules(t *testing.T) {
	v := newValidate()

	tests := []struct {
		tag   string
		value string
		want  bool
	}{
		{"coin_name", "Bitcoin Cash", true},
		{"coin_name", "Wrapped-BTC 2", true},
		{"coin_name", "", true},
		{"coin_name", "Bit$coin", false},
		{"coin_name", "Ethereum!", false},
		{"coin_name", "Bit\u00a0coin", true},
		{"coin_name", "Bit\u3000coin", true},
		{"coin_name", "Bit\tcoin", true},
		{"coin_name", "Bit\u200bcoin", false},
		{"crypto_symbol", "btc", true},
		{"crypto_symbol", "USDT2", true},
		{"crypto_symbol", "btc!", false},
		{"crypto_symbol", "b c", false},
		{"positive_number", "0.5", true},
		{"positive_number", "0", false},
		{"positive_number", "-1", false},
		{"positive_number", "abc", false},
		{"min_quantity", "0.00000001", true},
		{"min_quantity", "0.000000005", false},
		{"min_quantity", "abc", true},
		{"min_price", "0.01", true},
		{"min_price", "0.005", false},
		{"price_change_filter", "positive", true},
		{"price_change_filter", "up", false},
		{"sort_key", "name_desc", true},
		{"sort_key", "volume_desc", false},
		{"timeframe", "30d", true},
		{"timeframe", "5y", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if got := err == nil; got != tt.want {
				t.Errorf("%s(%q) valid = %v, want %v (err: %v)", tt.tag, tt.value, got, tt.want, err)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	// Registering twice on Gin's engine must not panic.
	Register()
	Register()
}
