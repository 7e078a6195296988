package components

import (
	"github.com/jcholuj/DesignSystem/pkg/validation"
)

// FieldState is a form member: anything that can validate, save, and reset
// itself. Field implements it; custom inputs can too.
type FieldState interface {
	Validate() bool
	Save()
	Reset()
}

// Form coordinates validation, save, and reset across registered fields.
//
//	email := components.NewField("", validation.Required())
//	form := components.NewForm()
//	form.Register(email)
//
//	if form.Validate() {
//	    form.Save()
//	}
type Form struct {
	fields []FieldState
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{}
}

// Register adds fields to the form. Fields are visited in registration
// order.
func (f *Form) Register(fields ...FieldState) {
	for _, field := range fields {
		if field == nil {
			continue
		}
		f.fields = append(f.fields, field)
	}
}

// Validate runs every field's validation and reports whether all passed.
// Every field is validated even after a failure so each one carries its
// own error text.
func (f *Form) Validate() bool {
	valid := true
	for _, field := range f.fields {
		if !field.Validate() {
			valid = false
		}
	}
	return valid
}

// Save stores the current value of every field, typically after a
// successful Validate.
func (f *Form) Save() {
	for _, field := range f.fields {
		field.Save()
	}
}

// Reset returns every field to its initial value and clears errors.
func (f *Form) Reset() {
	for _, field := range f.fields {
		field.Reset()
	}
}

// Field holds a form value together with its validation rules, error text,
// and last saved value. TextField binds a *Field[string]; other inputs can
// hold any comparable value.
type Field[T comparable] struct {
	initial   T
	value     T
	saved     T
	hasSaved  bool
	disabled  bool
	rules     []validation.Rule[T]
	errorText string

	// OnChanged is called whenever Set or Reset changes the value.
	OnChanged func(T)

	// observer is notified after any state change. Bound components use
	// it to mark themselves for relayout.
	observer func()
}

// NewField creates a field holding initial, validated by rules in order.
func NewField[T comparable](initial T, rules ...validation.Rule[T]) *Field[T] {
	return &Field[T]{initial: initial, value: initial, rules: rules}
}

// Value returns the current value.
func (f *Field[T]) Value() T {
	return f.value
}

// Set updates the value and notifies OnChanged. Error text is left in
// place until the next Validate.
func (f *Field[T]) Set(value T) {
	if f.value == value {
		return
	}
	f.value = value
	if f.OnChanged != nil {
		f.OnChanged(value)
	}
	f.notifyObserver()
}

// ErrorText returns the message from the last failed validation.
func (f *Field[T]) ErrorText() string {
	return f.errorText
}

// HasError reports whether the last validation failed.
func (f *Field[T]) HasError() bool {
	return f.errorText != ""
}

// Disabled reports whether the field skips validation and save.
func (f *Field[T]) Disabled() bool {
	return f.disabled
}

// SetDisabled toggles whether the field participates in validation and
// save. Disabling clears any error text.
func (f *Field[T]) SetDisabled(disabled bool) {
	f.disabled = disabled
	if disabled {
		f.errorText = ""
	}
	f.notifyObserver()
}

// Validate runs the field's rules against the current value and reports
// whether it passed. The first failing rule's message becomes the error
// text. Disabled fields always pass.
func (f *Field[T]) Validate() bool {
	if f.disabled {
		f.errorText = ""
		return true
	}
	f.errorText = validation.All(f.rules...)(f.value)
	f.notifyObserver()
	return f.errorText == ""
}

// Save stores the current value as the saved value. Disabled fields are
// skipped.
func (f *Field[T]) Save() {
	if f.disabled {
		return
	}
	f.saved = f.value
	f.hasSaved = true
}

// Saved returns the last saved value and whether Save has run.
func (f *Field[T]) Saved() (T, bool) {
	return f.saved, f.hasSaved
}

// Reset returns the field to its initial value, clears the error text,
// and notifies OnChanged when the value actually changed.
func (f *Field[T]) Reset() {
	changed := f.value != f.initial
	f.value = f.initial
	f.errorText = ""
	if changed && f.OnChanged != nil {
		f.OnChanged(f.value)
	}
	f.notifyObserver()
}

func (f *Field[T]) notifyObserver() {
	if f.observer != nil {
		f.observer()
	}
}
