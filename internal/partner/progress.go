package partner

import "strings"

// Completed returns the set of required fields whose trimmed value is
// non-blank. Optional fields never count.
func Completed(d Draft) map[Field]bool {
	done := make(map[Field]bool, len(RequiredFields))
	for _, f := range RequiredFields {
		if strings.TrimSpace(d.Value(f)) != "" {
			done[f] = true
		}
	}
	return done
}

// Progress returns the filled fraction of required fields, 0 to 1.
func Progress(d Draft) float64 {
	return float64(len(Completed(d))) / float64(len(RequiredFields))
}
