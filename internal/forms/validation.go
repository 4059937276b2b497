// Package forms implements the add-portfolio-item form: field validation with
// per-field messages, the derived total value and the simulated submit flow.
package forms

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	rules "cryptodash/internal/validator"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field names as they appear in requests and error payloads.
const (
	FieldName          = "name"
	FieldSymbol        = "symbol"
	FieldQuantity      = "quantity"
	FieldPurchasePrice = "purchase_price"
)

// Fields lists the editable fields in form order.
var Fields = []string{FieldName, FieldSymbol, FieldQuantity, FieldPurchasePrice}

// ItemInput holds the raw form values as entered. Rules run left to right
// and stop at the first failure, so the tag order is the message priority.
type ItemInput struct {
	Name          string `json:"name" validate:"required,min=2,max=50,coin_name"`
	Symbol        string `json:"symbol" validate:"required,min=2,max=10,crypto_symbol"`
	Quantity      string `json:"quantity" validate:"required,positive_number,min_quantity"`
	PurchasePrice string `json:"purchase_price" validate:"required,positive_number,min_price"`
}

// FieldError is the first failing rule of a field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors lists field errors in form order.
type ValidationErrors []FieldError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the error of field, if any.
func (e ValidationErrors) For(field string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		rules.RegisterRules(validate)
	})
	return validate
}

// Validate checks every field of in. It returns nil when the input is valid.
func Validate(in ItemInput) ValidationErrors {
	err := engine().Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	byField := make(map[string]FieldError, len(verrs))
	for _, fe := range verrs {
		byField[fe.Field()] = toFieldError(fe)
	}

	out := make(ValidationErrors, 0, len(byField))
	for _, f := range Fields {
		if fe, ok := byField[f]; ok {
			out = append(out, fe)
		}
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	out := FieldError{Field: fe.Field()}
	switch fe.Tag() {
	case "required":
		out.Rule, out.Message = "required", "This field is required"
	case "min":
		out.Rule, out.Message = "minlength", fmt.Sprintf("Minimum of %s characters", fe.Param())
	case "max":
		out.Rule, out.Message = "maxlength", fmt.Sprintf("Maximum of %s characters", fe.Param())
	case "coin_name":
		out.Rule, out.Message = "specialCharacters", "Special characters are not allowed"
	case "crypto_symbol":
		out.Rule, out.Message = "invalidSymbol", "Symbol must contain only letters and numbers"
	case "positive_number":
		out.Rule, out.Message = "positiveNumber", "Must be a valid positive number"
	case "min_quantity":
		out.Rule, out.Message = "minQuantity", "Minimum quantity: 0.00000001"
	case "min_price":
		out.Rule, out.Message = "minPrice", "Minimum price: $0.01"
	default:
		out.Rule, out.Message = fe.Tag(), "Invalid value"
	}
	return out
}

// TotalValue returns quantity × purchase price with two decimals.
// Values that do not parse as finite numbers count as 0.
func TotalValue(quantity, purchasePrice string) string {
	return decimal.NewFromFloat(number(quantity)).Mul(decimal.NewFromFloat(number(purchasePrice))).StringFixed(2)
}

func number(s string) float64 {
	n, ok := rules.ParseNumber(s)
	if !ok || math.IsInf(n, 0) {
		return 0
	}
	return n
}
