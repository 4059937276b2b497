package forms

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func validInput() ItemInput {
	return ItemInput{Name: "Bitcoin", Symbol: "BTC", Quantity: "0.5", PurchasePrice: "45000"}
}

func TestValidate_Valid(t *testing.T) {
	if errs := Validate(validInput()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ItemInput)
		field    string
		wantRule string
		wantMsg  string
	}{
		{"name required", func(in *ItemInput) { in.Name = "" }, FieldName, "required", "This field is required"},
		{"name too short", func(in *ItemInput) { in.Name = "B" }, FieldName, "minlength", "Minimum of 2 characters"},
		{"name too long", func(in *ItemInput) { in.Name = strings.Repeat("a", 51) }, FieldName, "maxlength", "Maximum of 50 characters"},
		{"name special characters", func(in *ItemInput) { in.Name = "Bit$coin" }, FieldName, "specialCharacters", "Special characters are not allowed"},
		{"symbol required", func(in *ItemInput) { in.Symbol = "" }, FieldSymbol, "required", "This field is required"},
		{"symbol too short", func(in *ItemInput) { in.Symbol = "B" }, FieldSymbol, "minlength", "Minimum of 2 characters"},
		{"symbol too long", func(in *ItemInput) { in.Symbol = "ABCDEFGHIJK" }, FieldSymbol, "maxlength", "Maximum of 10 characters"},
		{"symbol invalid", func(in *ItemInput) { in.Symbol = "btc!" }, FieldSymbol, "invalidSymbol", "Symbol must contain only letters and numbers"},
		{"quantity required", func(in *ItemInput) { in.Quantity = "" }, FieldQuantity, "required", "This field is required"},
		{"quantity not a number", func(in *ItemInput) { in.Quantity = "abc" }, FieldQuantity, "positiveNumber", "Must be a valid positive number"},
		{"quantity zero", func(in *ItemInput) { in.Quantity = "0" }, FieldQuantity, "positiveNumber", "Must be a valid positive number"},
		{"quantity below minimum", func(in *ItemInput) { in.Quantity = "0.000000005" }, FieldQuantity, "minQuantity", "Minimum quantity: 0.00000001"},
		{"price required", func(in *ItemInput) { in.PurchasePrice = "" }, FieldPurchasePrice, "required", "This field is required"},
		{"price negative", func(in *ItemInput) { in.PurchasePrice = "-3" }, FieldPurchasePrice, "positiveNumber", "Must be a valid positive number"},
		{"price below minimum", func(in *ItemInput) { in.Quantity = "1"; in.PurchasePrice = "0.005" }, FieldPurchasePrice, "minPrice", "Minimum price: $0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := Validate(in)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one field error, got %v", errs)
			}
			fe, ok := errs.For(tt.field)
			if !ok {
				t.Fatalf("expected error on %s, got %v", tt.field, errs)
			}
			if fe.Rule != tt.wantRule {
				t.Errorf("rule = %q, want %q", fe.Rule, tt.wantRule)
			}
			if fe.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", fe.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidate_FirstFailingRuleWins(t *testing.T) {
	// "!" is both too short and a special character; length is checked first.
	errs := Validate(ItemInput{Name: "!", Symbol: "!", Quantity: "x", PurchasePrice: "0.001"})

	want := map[string]string{
		FieldName:          "minlength",
		FieldSymbol:        "minlength",
		FieldQuantity:      "positiveNumber",
		FieldPurchasePrice: "minPrice",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for i, field := range Fields {
		if errs[i].Field != field {
			t.Errorf("errs[%d].Field = %q, want %q (form order)", i, errs[i].Field, field)
		}
		if errs[i].Rule != want[field] {
			t.Errorf("%s rule = %q, want %q", field, errs[i].Rule, want[field])
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := Validate(ItemInput{})
	var target ValidationErrors
	if !errors.As(error(errs), &target) {
		t.Fatal("ValidationErrors should satisfy errors.As")
	}
	if !strings.Contains(errs.Error(), "name: This field is required") {
		t.Errorf("unexpected error text: %s", errs.Error())
	}
}

func TestTotalValue(t *testing.T) {
	tests := []struct {
		q, p, want string
	}{
		{"0.5", "45000", "22500.00"},
		{"2", "0.333", "0.67"},
		{"", "100", "0.00"},
		{"abc", "100", "0.00"},
		{"3", "", "0.00"},
		{"1.5 coins", "10", "15.00"},
		{"0.1", "0.2", "0.02"},
	}
	for _, tt := range tests {
		if got := TotalValue(tt.q, tt.p); got != tt.want {
			t.Errorf("TotalValue(%q, %q) = %q, want %q", tt.q, tt.p, got, tt.want)
		}
	}
}

func TestFlow_SetRecomputesTotalValue(t *testing.T) {
	f := NewFlow()
	if got := f.TotalValue(); got != "0.00" {
		t.Errorf("initial total = %q, want 0.00", got)
	}
	_ = f.Set(FieldQuantity, "2")
	if got := f.TotalValue(); got != "0.00" {
		t.Errorf("total without price = %q, want 0.00", got)
	}
	_ = f.Set(FieldPurchasePrice, "3200")
	if got := f.TotalValue(); got != "6400.00" {
		t.Errorf("total = %q, want 6400.00", got)
	}
	_ = f.Set(FieldQuantity, "2.5")
	if got := f.TotalValue(); got != "8000.00" {
		t.Errorf("total after quantity change = %q, want 8000.00", got)
	}
}

func TestFlow_SetUnknownField(t *testing.T) {
	f := NewFlow()
	if err := f.Set("total_value", "1"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestFlow_ErrorsOnlyForTouchedFields(t *testing.T) {
	f := NewFlow()
	if errs := f.Errors(); len(errs) != 0 {
		t.Fatalf("untouched form should show no errors, got %v", errs)
	}

	_ = f.Set(FieldSymbol, "btc!")
	errs := f.Errors()
	if len(errs) != 1 || errs[0].Field != FieldSymbol || errs[0].Rule != "invalidSymbol" {
		t.Fatalf("expected only the symbol error, got %v", errs)
	}
	if f.Touched(FieldName) {
		t.Error("name should not be touched yet")
	}
}

func TestFlow_InvalidSubmitTouchesAllFields(t *testing.T) {
	f := NewFlow(WithDelays(0, 0))
	_ = f.Set(FieldName, "Bitcoin")

	sub, err := f.Submit(context.Background())
	if sub != nil {
		t.Fatal("expected no submission")
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 field errors, got %v", verrs)
	}
	if f.State() != StateEditing {
		t.Errorf("state = %s, want editing", f.State())
	}
	for _, field := range Fields {
		if !f.Touched(field) {
			t.Errorf("%s should be touched after submit", field)
		}
	}
	if got := len(f.Errors()); got != 3 {
		t.Errorf("visible errors = %d, want 3", got)
	}
}

func TestFlow_SuccessThenRedirect(t *testing.T) {
	redirected := make(chan string, 1)
	f := NewFlow(
		WithDelays(time.Millisecond, 10*time.Millisecond),
		WithRedirect(func(target string) { redirected <- target }),
	)
	if err := f.Fill(validInput()); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	sub, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.RedirectTo != "/portfolio" || sub.TotalValue != "22500.00" {
		t.Errorf("unexpected submission: %+v", sub)
	}
	if f.State() != StateSuccess {
		t.Errorf("state = %s, want success", f.State())
	}
	if err := f.Set(FieldName, "Ether"); !errors.Is(err, ErrNotEditing) {
		t.Errorf("expected ErrNotEditing after success, got %v", err)
	}

	select {
	case target := <-redirected:
		if target != RedirectTarget {
			t.Errorf("redirect target = %q", target)
		}
	case <-time.After(time.Second):
		t.Fatal("redirect did not happen")
	}
	if f.State() != StateRedirected {
		t.Errorf("state = %s, want redirected", f.State())
	}
}

func TestFlow_CancelStopsRedirect(t *testing.T) {
	redirected := make(chan string, 1)
	f := NewFlow(
		WithDelays(0, 50*time.Millisecond),
		WithRedirect(func(target string) { redirected <- target }),
	)
	_ = f.Fill(validInput())

	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.Cancel()

	select {
	case <-redirected:
		t.Fatal("redirect fired after Cancel")
	case <-time.After(150 * time.Millisecond):
	}
	if f.State() != StateSuccess {
		t.Errorf("state = %s, want success", f.State())
	}
}

func TestFlow_ContextCancelReturnsToEditing(t *testing.T) {
	f := NewFlow(WithDelays(time.Hour, 0))
	_ = f.Fill(validInput())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Submit(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if f.State() != StateEditing {
		t.Errorf("state = %s, want editing", f.State())
	}
}

func TestState_String(t *testing.T) {
	if StateSubmitting.String() != "submitting" || State(9).String() != "state(9)" {
		t.Error("unexpected state names")
	}
}
