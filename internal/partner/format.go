package partner

import (
	"regexp"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	nonAlphaRe = regexp.MustCompile(`[^A-Za-z]`)
)

// digit offsets where each mask inserts its separators
var (
	cnpjSeps    = map[int]string{2: ".", 5: ".", 8: "/", 12: "-"}
	cpfSeps     = map[int]string{3: ".", 6: ".", 9: "-"}
	postalSeps  = map[int]string{5: "-"}
	phone10Seps = map[int]string{0: "(", 2: ") ", 6: "-"}
	phone11Seps = map[int]string{0: "(", 2: ") ", 7: "-"}
)

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// applyMask drops non-digits, truncates to max digits, and re-inserts
// the mask separators. Masked output feeds back through unchanged,
// so every formatter built on it is idempotent.
func applyMask(s string, max int, seps map[int]string) string {
	digits := Digits(s)
	if len(digits) > max {
		digits = digits[:max]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if sep, ok := seps[i]; ok {
			b.WriteString(sep)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// FormatCNPJ renders up to 14 digits as XX.XXX.XXX/XXXX-XX.
func FormatCNPJ(s string) string {
	return applyMask(s, 14, cnpjSeps)
}

// FormatCPF renders up to 11 digits as XXX.XXX.XXX-XX.
func FormatCPF(s string) string {
	return applyMask(s, 11, cpfSeps)
}

// FormatTaxID applies the mask the personality calls for: CNPJ for
// companies, CPF for individuals.
func FormatTaxID(p Personality, s string) string {
	if p == Individual {
		return FormatCPF(s)
	}
	return FormatCNPJ(s)
}

// FormatPostalCode renders up to 8 digits as XXXXX-XXX.
func FormatPostalCode(s string) string {
	return applyMask(s, 8, postalSeps)
}

// FormatPhone renders up to 11 digits as (XX) XXXX-XXXX, shifting the
// dash when a mobile number brings the eleventh digit.
func FormatPhone(s string) string {
	if len(Digits(s)) > 10 {
		return applyMask(s, 11, phone11Seps)
	}
	return applyMask(s, 10, phone10Seps)
}

// FormatState keeps at most two letters, upper-cased.
func FormatState(s string) string {
	s = nonAlphaRe.ReplaceAllString(s, "")
	if len(s) > 2 {
		s = s[:2]
	}
	return strings.ToUpper(s)
}

// Format applies the field's input mask. Fields without a mask pass
// through unchanged.
func Format(f Field, p Personality, s string) string {
	switch f {
	case FieldTaxID:
		return FormatTaxID(p, s)
	case FieldPostalCode:
		return FormatPostalCode(s)
	case FieldPhone:
		return FormatPhone(s)
	case FieldState:
		return FormatState(s)
	}
	return s
}
