// Package partner holds the business partner draft and the pure
// formatting, validation, and completion rules applied to it.
package partner

// Personality selects which kind of partner is being registered:
// an individual person or a company.
type Personality string

const (
	Individual Personality = "individual"
	Company    Personality = "company"
)

// Label returns the display name for the personality.
func (p Personality) Label() string {
	if p == Individual {
		return "individual"
	}
	return "company"
}

// Field identifies a single draft field.
type Field int

const (
	FieldPersonality Field = iota
	FieldLegalName
	FieldTaxID
	FieldPostalCode
	FieldState
	FieldCity
	FieldStreet
	FieldNumber
	FieldNeighborhood
	FieldEmail
	FieldPhone
	FieldComplement
	FieldNote
	FieldCount
)

var fieldNames = [FieldCount]string{
	"personality",
	"legal name",
	"tax id",
	"postal code",
	"state",
	"city",
	"street",
	"number",
	"neighborhood",
	"email",
	"phone",
	"complement",
	"note",
}

func (f Field) String() string {
	if f < 0 || f >= FieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// RequiredFields are the ten fields that must be filled before a draft
// can be submitted.
var RequiredFields = [...]Field{
	FieldLegalName,
	FieldTaxID,
	FieldPostalCode,
	FieldState,
	FieldCity,
	FieldStreet,
	FieldNumber,
	FieldNeighborhood,
	FieldEmail,
	FieldPhone,
}

// Draft is an in-progress partner record. All values are held as the
// user sees them, masks included.
type Draft struct {
	Personality  Personality `json:"personality"`
	LegalName    string      `json:"legal_name"`
	TaxID        string      `json:"tax_id"`
	PostalCode   string      `json:"postal_code"`
	State        string      `json:"state"`
	City         string      `json:"city"`
	Street       string      `json:"street"`
	Number       string      `json:"number"`
	Neighborhood string      `json:"neighborhood"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Complement   string      `json:"complement"`
	Note         string      `json:"note"`
}

// NewDraft returns an empty draft with the company personality.
func NewDraft() Draft {
	return Draft{Personality: Company}
}

// SwitchPersonality returns the draft with the new personality applied.
// The tax id and legal name are cleared because their meaning depends
// on the personality. Switching to the current personality is a no-op.
func SwitchPersonality(d Draft, p Personality) Draft {
	if d.Personality == p {
		return d
	}
	d.Personality = p
	d.TaxID = ""
	d.LegalName = ""
	return d
}

// Value returns the draft's current value for a field. The personality
// is reported as its string form.
func (d Draft) Value(f Field) string {
	switch f {
	case FieldPersonality:
		return string(d.Personality)
	case FieldLegalName:
		return d.LegalName
	case FieldTaxID:
		return d.TaxID
	case FieldPostalCode:
		return d.PostalCode
	case FieldState:
		return d.State
	case FieldCity:
		return d.City
	case FieldStreet:
		return d.Street
	case FieldNumber:
		return d.Number
	case FieldNeighborhood:
		return d.Neighborhood
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldComplement:
		return d.Complement
	case FieldNote:
		return d.Note
	}
	return ""
}

// Set returns the draft with the field set to the given value. The
// personality field is not settable this way; use SwitchPersonality.
func (d Draft) Set(f Field, v string) Draft {
	switch f {
	case FieldLegalName:
		d.LegalName = v
	case FieldTaxID:
		d.TaxID = v
	case FieldPostalCode:
		d.PostalCode = v
	case FieldState:
		d.State = v
	case FieldCity:
		d.City = v
	case FieldStreet:
		d.Street = v
	case FieldNumber:
		d.Number = v
	case FieldNeighborhood:
		d.Neighborhood = v
	case FieldEmail:
		d.Email = v
	case FieldPhone:
		d.Phone = v
	case FieldComplement:
		d.Complement = v
	case FieldNote:
		d.Note = v
	}
	return d
}
