package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// State is a step of the add-item flow.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSuccess
	StateRedirected
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateRedirected:
		return "redirected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// RedirectTarget is where a successful submission navigates to.
const RedirectTarget = "/portfolio"

// Default delays of the simulated submission.
const (
	DefaultSubmitDelay   = time.Second
	DefaultRedirectDelay = 2 * time.Second
)

var (
	// ErrNotEditing is returned by Submit and Set outside the editing state.
	ErrNotEditing = errors.New("form is not editable")
	// ErrUnknownField is returned by Set for a field the form does not have.
	ErrUnknownField = errors.New("unknown form field")
)

// Submission is the result of an accepted submit. Nothing is persisted.
type Submission struct {
	Item          ItemInput     `json:"item"`
	TotalValue    string        `json:"total_value"`
	RedirectTo    string        `json:"redirect_to"`
	RedirectAfter time.Duration `json:"-"`
}

// Flow is the add-item form state machine:
// Editing → Submitting → Success → Redirected, or back to Editing when the
// input is invalid or the submission is cancelled.
type Flow struct {
	mu         sync.Mutex
	input      ItemInput
	totalValue string
	touched    map[string]bool
	state      State
	timer      *time.Timer

	submitDelay   time.Duration
	redirectDelay time.Duration
	onRedirect    func(target string)
}

// FlowOption customizes a Flow.
type FlowOption func(*Flow)

// WithDelays sets the simulated submit and redirect delays.
func WithDelays(submit, redirect time.Duration) FlowOption {
	return func(f *Flow) {
		f.submitDelay = submit
		f.redirectDelay = redirect
	}
}

// WithRedirect sets the callback run when the flow redirects.
func WithRedirect(fn func(target string)) FlowOption {
	return func(f *Flow) { f.onRedirect = fn }
}

// NewFlow creates an empty form in the editing state.
func NewFlow(opts ...FlowOption) *Flow {
	f := &Flow{
		totalValue:    TotalValue("", ""),
		touched:       make(map[string]bool, len(Fields)),
		submitDelay:   DefaultSubmitDelay,
		redirectDelay: DefaultRedirectDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set updates a field, marks it touched and recomputes the total value.
func (f *Flow) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateEditing {
		return ErrNotEditing
	}

	switch field {
	case FieldName:
		f.input.Name = value
	case FieldSymbol:
		f.input.Symbol = value
	case FieldQuantity:
		f.input.Quantity = value
	case FieldPurchasePrice:
		f.input.PurchasePrice = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	f.touched[field] = true
	f.totalValue = TotalValue(f.input.Quantity, f.input.PurchasePrice)
	return nil
}

// Fill sets every field of in.
func (f *Flow) Fill(in ItemInput) error {
	values := map[string]string{
		FieldName:          in.Name,
		FieldSymbol:        in.Symbol,
		FieldQuantity:      in.Quantity,
		FieldPurchasePrice: in.PurchasePrice,
	}
	for _, field := range Fields {
		if err := f.Set(field, values[field]); err != nil {
			return err
		}
	}
	return nil
}

// Input returns the current field values.
func (f *Flow) Input() ItemInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// TotalValue returns the derived total value.
func (f *Flow) TotalValue() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalValue
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Touched reports whether field has been edited or revealed by a submit.
func (f *Flow) Touched(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched[field]
}

// Errors returns the errors of touched fields only.
func (f *Flow) Errors() ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	var visible ValidationErrors
	for _, fe := range Validate(f.input) {
		if f.touched[fe.Field] {
			visible = append(visible, fe)
		}
	}
	return visible
}

// Submit validates the form. Invalid input marks every field touched and
// returns the ValidationErrors, leaving the flow in Editing. Valid input moves
// to Submitting, waits for the submit delay and then reports Success; the
// redirect follows after the redirect delay unless Cancel is called.
// Cancelling ctx while submitting returns the flow to Editing.
func (f *Flow) Submit(ctx context.Context) (*Submission, error) {
	f.mu.Lock()
	if f.state != StateEditing {
		f.mu.Unlock()
		return nil, ErrNotEditing
	}
	if errs := Validate(f.input); len(errs) > 0 {
		for _, field := range Fields {
			f.touched[field] = true
		}
		f.mu.Unlock()
		return nil, errs
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	timer := time.NewTimer(f.submitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		f.mu.Lock()
		f.state = StateEditing
		f.mu.Unlock()
		return nil, ctx.Err()
	case <-timer.C:
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateSuccess
	f.timer = time.AfterFunc(f.redirectDelay, f.redirect)

	return &Submission{
		Item:          f.input,
		TotalValue:    f.totalValue,
		RedirectTo:    RedirectTarget,
		RedirectAfter: f.redirectDelay,
	}, nil
}

func (f *Flow) redirect() {
	f.mu.Lock()
	if f.state != StateSuccess {
		f.mu.Unlock()
		return
	}
	f.state = StateRedirected
	cb := f.onRedirect
	f.mu.Unlock()

	if cb != nil {
		cb(RedirectTarget)
	}
}

// Cancel stops a pending redirect. It is safe to call at any time.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
