package components

import (
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/validation"
)

type fieldProbe struct {
	name  string
	valid bool
	log   *[]string
}

func (p *fieldProbe) Validate() bool {
	*p.log = append(*p.log, "validate "+p.name)
	return p.valid
}

func (p *fieldProbe) Save() {
	*p.log = append(*p.log, "save "+p.name)
}

func (p *fieldProbe) Reset() {
	*p.log = append(*p.log, "reset "+p.name)
}

func TestFieldValidate(t *testing.T) {
	field := NewField("", validation.Required(), validation.MinLength(3))

	if field.Validate() {
		t.Error("empty value validated")
	}
	if got := field.ErrorText(); got != "This field is required" {
		t.Errorf("error = %q, want the first failing rule", got)
	}

	field.Set("ab")
	if field.Validate() {
		t.Error("short value validated")
	}
	if got := field.ErrorText(); got != "Must be at least 3 characters" {
		t.Errorf("error = %q", got)
	}

	field.Set("abc")
	if !field.Validate() {
		t.Error("valid value rejected")
	}
	if field.HasError() {
		t.Errorf("error = %q, want cleared", field.ErrorText())
	}
}

func TestFieldSetNotifies(t *testing.T) {
	var seen []int
	field := NewField(0)
	field.OnChanged = func(v int) { seen = append(seen, v) }

	field.Set(1)
	field.Set(1)
	field.Set(2)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("seen = %v, want one call per change", seen)
	}
}

func TestFieldSaveAndReset(t *testing.T) {
	field := NewField("initial")

	if _, saved := field.Saved(); saved {
		t.Error("fresh field reports a saved value")
	}

	field.Set("edited")
	field.Save()
	if value, saved := field.Saved(); !saved || value != "edited" {
		t.Errorf("saved = %q %v, want edited", value, saved)
	}

	field.Reset()
	if got := field.Value(); got != "initial" {
		t.Errorf("value = %q, want initial after reset", got)
	}
	if value, _ := field.Saved(); value != "edited" {
		t.Errorf("saved = %q, want reset to keep the saved value", value)
	}
}

func TestFieldResetClearsError(t *testing.T) {
	field := NewField("", validation.Required())
	field.Validate()
	if !field.HasError() {
		t.Fatal("expected an error")
	}
	field.Reset()
	if field.HasError() {
		t.Errorf("error = %q, want cleared by reset", field.ErrorText())
	}
}

func TestFieldDisabledSkipsValidationAndSave(t *testing.T) {
	field := NewField("", validation.Required())
	field.SetDisabled(true)

	if !field.Validate() {
		t.Error("disabled field failed validation")
	}
	if field.HasError() {
		t.Errorf("error = %q, want none while disabled", field.ErrorText())
	}

	field.Set("x")
	field.Save()
	if _, saved := field.Saved(); saved {
		t.Error("disabled field saved")
	}
}

func TestFieldDisablingClearsError(t *testing.T) {
	field := NewField("", validation.Required())
	field.Validate()
	field.SetDisabled(true)
	if field.HasError() {
		t.Errorf("error = %q, want cleared on disable", field.ErrorText())
	}
}

func TestFieldObserver(t *testing.T) {
	field := NewField("")
	notified := 0
	field.observer = func() { notified++ }

	field.Set("a")
	field.Validate()
	field.Reset()
	field.SetDisabled(true)
	if notified != 4 {
		t.Errorf("notified = %d, want every state change observed", notified)
	}

	field.Set(field.Value())
	if notified != 4 {
		t.Errorf("notified = %d, want no-op set unobserved", notified)
	}
}

func TestFieldNumericRules(t *testing.T) {
	field := NewField(0, validation.Min(1), validation.Max(10))

	if field.Validate() {
		t.Error("zero validated against min 1")
	}
	field.Set(5)
	if !field.Validate() {
		t.Errorf("5 rejected: %q", field.ErrorText())
	}
	field.Set(11)
	if field.Validate() {
		t.Error("11 validated against max 10")
	}
}

func TestFormValidatesEveryField(t *testing.T) {
	username := NewField("", validation.Required())
	email := NewField("me@example.com", validation.Required())
	bio := NewField("x", validation.MinLength(5))

	form := NewForm()
	form.Register(username, email, bio)

	if form.Validate() {
		t.Error("form with invalid fields validated")
	}
	if !username.HasError() {
		t.Error("first invalid field carries no error")
	}
	if email.HasError() {
		t.Errorf("valid field carries error %q", email.ErrorText())
	}
	if !bio.HasError() {
		t.Error("field after a failure was not validated")
	}
}

func TestFormSaveAndReset(t *testing.T) {
	username := NewField("")
	email := NewField("")
	form := NewForm()
	form.Register(username, email)

	username.Set("gopher")
	email.Set("go@example.com")
	form.Save()

	if value, saved := username.Saved(); !saved || value != "gopher" {
		t.Errorf("username saved = %q %v", value, saved)
	}
	if value, saved := email.Saved(); !saved || value != "go@example.com" {
		t.Errorf("email saved = %q %v", value, saved)
	}

	form.Reset()
	if username.Value() != "" || email.Value() != "" {
		t.Error("reset did not restore initial values")
	}
}

func TestFormVisitsFieldsInRegistrationOrder(t *testing.T) {
	var log []string
	form := NewForm()
	form.Register(
		&fieldProbe{name: "a", valid: false, log: &log},
		nil,
		&fieldProbe{name: "b", valid: true, log: &log},
	)

	if form.Validate() {
		t.Error("form with a failing probe validated")
	}
	form.Save()
	form.Reset()

	want := []string{"validate a", "validate b", "save a", "save b", "reset a", "reset b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}
