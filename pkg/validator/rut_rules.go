package validator

import "github.com/dmitrymomot/rutkit/pkg/rut"

// ValidRUT validates a RUT in any notation ("18.300.252-K", "18300252k", ...).
func ValidRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.Validate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid RUT",
			TranslationKey: "validation.rut",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// StrictRUT validates a RUT written in the canonical "18.300.252-K" form.
func StrictRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.ValidateStrict(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid RUT formatted as 12.345.678-5",
			TranslationKey: "validation.rut_strict",
			TranslationValues: map[string]any{
				"field":   field,
				"example": "12.345.678-5",
			},
		},
	}
}

// PersonRUT validates a RUT that belongs to a natural person.
func PersonRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.Validate(value) && rut.IsPerson(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid personal RUT",
			TranslationKey: "validation.rut_person",
			TranslationValues: map[string]any{
				"field": field,
				"min":   rut.PersonMin,
				"max":   rut.CompanyMin - 1,
			},
		},
	}
}

// CompanyRUT validates a RUT that belongs to a company.
func CompanyRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return rut.Validate(value) && rut.IsCompany(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid company RUT",
			TranslationKey: "validation.rut_company",
			TranslationValues: map[string]any{
				"field": field,
				"min":   rut.CompanyMin,
			},
		},
	}
}

// EqualRUT checks that value and other denote the same RUT regardless of
// punctuation and letter case, e.g. a confirmation field.
func EqualRUT(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return rut.AreEqual(value, other)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "RUTs do not match",
			TranslationKey: "validation.rut_equal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
