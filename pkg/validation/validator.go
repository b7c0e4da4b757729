package validation

import (
	"context"
	"reflect"
)

// EmailChecker reports whether a value is a syntactically valid e-mail address.
// An error means the check itself could not be performed.
type EmailChecker interface {
	IsValid(ctx context.Context, email string) (bool, error)
}

type ruleKind int

const (
	ruleRequired ruleKind = iota + 1
	ruleMatch
	ruleEmail
)

// Rule is a single-field check. Rules are plain values; the Composite decides how each kind runs.
type Rule struct {
	kind  ruleKind
	field string
	other string
}

// Required fails with MissingField when the field is absent, nil or empty.
func Required(field string) Rule { return Rule{kind: ruleRequired, field: field} }

// Match fails with InvalidField(other) when the two values differ.
func Match(field, other string) Rule { return Rule{kind: ruleMatch, field: field, other: other} }

// Email fails with InvalidField when the checker rejects the value.
func Email(field string) Rule { return Rule{kind: ruleEmail, field: field} }

// Composite evaluates rules in registration order and stops at the first failure.
type Composite struct {
	rules   []Rule
	checker EmailChecker
}

func New(checker EmailChecker, rules ...Rule) *Composite {
	return &Composite{rules: rules, checker: checker}
}

// Validate returns a *Error for the first failing rule, nil when every rule passes,
// or the checker's own error if an e-mail check could not run.
func (c *Composite) Validate(ctx context.Context, body map[string]any) error {
	for _, r := range c.rules {
		if err := c.apply(ctx, r, body); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composite) apply(ctx context.Context, r Rule, body map[string]any) error {
	switch r.kind {
	case ruleRequired:
		if isEmpty(body[r.field]) {
			return NewMissingField(r.field)
		}
	case ruleMatch:
		if !reflect.DeepEqual(body[r.field], body[r.other]) {
			return NewInvalidField(r.other)
		}
	case ruleEmail:
		email, ok := body[r.field].(string)
		if !ok {
			return NewInvalidField(r.field)
		}
		valid, err := c.checker.IsValid(ctx, email)
		if err != nil {
			return err
		}
		if !valid {
			return NewInvalidField(r.field)
		}
	}
	return nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
