package validation

import (
	"encoding/json"
	"fmt"
)

// Kind tags the variant of a validation failure.
type Kind int

const (
	MissingField Kind = iota + 1
	InvalidField
)

// Error is a client-caused failure detected before any business logic runs.
type Error struct {
	Kind  Kind
	Field string
}

func NewMissingField(field string) *Error { return &Error{Kind: MissingField, Field: field} }

func NewInvalidField(field string) *Error { return &Error{Kind: InvalidField, Field: field} }

// Name is the stable identifier rendered to clients.
func (e *Error) Name() string {
	if e.Kind == MissingField {
		return "MissingParamName"
	}
	return "InvalidParamName"
}

func (e *Error) Error() string {
	if e.Kind == MissingField {
		return fmt.Sprintf("Missing param: %s", e.Field)
	}
	return fmt.Sprintf("Invalid param: %s", e.Field)
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}{Name: e.Name(), Message: e.Error()})
}
