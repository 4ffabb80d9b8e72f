package partner

import (
	"regexp"
	"strings"
)

// one local part, one domain with a dot, no whitespace
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a field to a human-readable validation message.
type FieldErrors map[Field]string

// Valid reports whether no field has an error.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// ValidateTaxID reports whether the tax id carries the digit count its
// personality requires: 11 for individuals, 14 for companies.
func ValidateTaxID(p Personality, s string) bool {
	n := len(Digits(s))
	if p == Individual {
		return n == 11
	}
	return n == 14
}

// ValidatePostalCode reports whether the postal code has 8 digits.
func ValidatePostalCode(s string) bool {
	return len(Digits(s)) == 8
}

// ValidatePhone reports whether the phone has 10 or 11 digits.
func ValidatePhone(s string) bool {
	n := len(Digits(s))
	return n == 10 || n == 11
}

// ValidateState reports whether the state is exactly two letters.
func ValidateState(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == 2 && nonAlphaRe.FindStringIndex(s) == nil
}

// ValidateEmail reports whether the email has a plausible
// local-part@domain shape.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// Validate checks the whole draft and returns every failure at once.
// A blank required field reports only the required message; pattern
// checks run on fields that have content.
func Validate(d Draft) FieldErrors {
	errs := make(FieldErrors)

	for _, f := range RequiredFields {
		if strings.TrimSpace(d.Value(f)) == "" {
			errs[f] = "required"
		}
	}

	if _, blank := errs[FieldTaxID]; !blank && !ValidateTaxID(d.Personality, d.TaxID) {
		if d.Personality == Individual {
			errs[FieldTaxID] = "must have 11 digits"
		} else {
			errs[FieldTaxID] = "must have 14 digits"
		}
	}

	if _, blank := errs[FieldPostalCode]; !blank && !ValidatePostalCode(d.PostalCode) {
		errs[FieldPostalCode] = "must have 8 digits"
	}

	if _, blank := errs[FieldState]; !blank && !ValidateState(d.State) {
		errs[FieldState] = "must be 2 letters"
	}

	if _, blank := errs[FieldEmail]; !blank && !ValidateEmail(d.Email) {
		errs[FieldEmail] = "invalid email"
	}

	if _, blank := errs[FieldPhone]; !blank && !ValidatePhone(d.Phone) {
		errs[FieldPhone] = "must have 10 or 11 digits"
	}

	return errs
}
