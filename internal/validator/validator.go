// Package validator provides the custom validation rules shared by the
// add-item form and Gin's binding engine.
package validator

import (
	"regexp"
	"strconv"
	"strings"

	"cryptodash/internal/coinfilter"
	"cryptodash/internal/market"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Thresholds of the numeric form rules.
const (
	MinQuantity = 0.00000001
	MinPrice    = 0.01
)

var (
	// coinNameRegex allows the whitespace a browser \s matches, including NBSP
	// and the other Unicode space separators.
	coinNameRegex     = regexp.MustCompile(`^[a-zA-Z0-9\p{Zs}\t\n\v\f\r\x{2028}\x{2029}\x{FEFF}\-]*$`)
	cryptoSymbolRegex = regexp.MustCompile(`^[A-Z0-9]+$`)
	// numberPrefixRegex matches the leading decimal literal of a string.
	numberPrefixRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterRules(v)
	}
}

// RegisterRules registers all custom validators with v.
func RegisterRules(v *validator.Validate) {
	_ = v.RegisterValidation("coin_name", validateCoinName)
	_ = v.RegisterValidation("crypto_symbol", validateCryptoSymbol)
	_ = v.RegisterValidation("positive_number", validatePositiveNumber)
	_ = v.RegisterValidation("min_quantity", validateMinQuantity)
	_ = v.RegisterValidation("min_price", validateMinPrice)
	_ = v.RegisterValidation("price_change_filter", validatePriceChangeFilter)
	_ = v.RegisterValidation("sort_key", validateSortKey)
	_ = v.RegisterValidation("timeframe", validateTimeframe)
}

// ParseNumber reads the leading number of s after trimming spaces, the way a
// browser's parseFloat does. ok is false when s does not start with a number.
func ParseNumber(s string) (value float64, ok bool) {
	prefix := numberPrefixRegex.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	// Out-of-range exponents yield ±Inf or 0 alongside the error, as parseFloat does.
	f, _ := strconv.ParseFloat(prefix, 64)
	return f, true
}

// Empty values pass the pattern rules; "required" reports them.
func validateCoinName(fl validator.FieldLevel) bool {
	return coinNameRegex.MatchString(fl.Field().String())
}

func validateCryptoSymbol(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return cryptoSymbolRegex.MatchString(strings.ToUpper(s))
}

func validatePositiveNumber(fl validator.FieldLevel) bool {
	n, ok := ParseNumber(fl.Field().String())
	return ok && n > 0
}

func validateMinQuantity(fl validator.FieldLevel) bool {
	n, ok := ParseNumber(fl.Field().String())
	return !ok || n >= MinQuantity
}

func validateMinPrice(fl validator.FieldLevel) bool {
	n, ok := ParseNumber(fl.Field().String())
	return !ok || n >= MinPrice
}

func validatePriceChangeFilter(fl validator.FieldLevel) bool {
	_, ok := coinfilter.ParseChangeFilter(fl.Field().String())
	return ok
}

func validateSortKey(fl validator.FieldLevel) bool {
	_, ok := coinfilter.ParseSortKey(fl.Field().String())
	return ok
}

func validateTimeframe(fl validator.FieldLevel) bool {
	switch market.Timeframe(fl.Field().String()) {
	case market.Timeframe24h, market.Timeframe7d, market.Timeframe30d, market.Timeframe1y:
		return true
	}
	return false
}
