package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator used for inbound entity payloads. Field
// constraints live as `validate` tags on the entity types; nested
// structs and slices are covered by dive tags there.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// FieldErrors flattens a validator error into field -> message, keyed
// by struct namespace so the offending field and the violated
// constraint are both visible to the caller.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
		return out
	}
	out["error"] = err.Error()
	return out
}
