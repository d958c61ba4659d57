// Package validation provides struct tag validation built on the validator
// library, reporting failures as application errors with per-field details.
//
// # Usage
//
//	type Settings struct {
//	    Limit int `validate:"gt=0"`
//	}
//	err := validation.Validate(settings)
package validation
