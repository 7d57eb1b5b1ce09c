package forminator

// Entry is one form submission to backfill. All string fields are opaque
// text except Gender (mapped to the form's bilingual labels) and Amount
// (must parse as a decimal). Field names in batch files are the snake_case
// tags below.
type Entry struct {
	// Identity.
	EntryID     int64 `json:"entry_id" yaml:"entry_id"`
	MetaIDStart int64 `json:"meta_id_start" yaml:"meta_id_start"`

	// Person.
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Grade     string `json:"grade" yaml:"grade"`
	DojoName  string `json:"dojo_name" yaml:"dojo_name"`
	BirthDate string `json:"birth_date" yaml:"birth_date"`
	Gender    string `json:"gender" yaml:"gender"`

	// Payment.
	TransactionID string `json:"stripe_transaction_id" yaml:"stripe_transaction_id"`
	Amount        string `json:"stripe_amount" yaml:"stripe_amount"`
	Currency      string `json:"currency,omitempty" yaml:"currency,omitempty"`

	// Options.
	Party      bool   `json:"party" yaml:"party"`
	TShirt     bool   `json:"t_shirt" yaml:"t_shirt"`
	TShirtSize string `json:"t_shirt_size,omitempty" yaml:"t_shirt_size,omitempty"`

	// DateCreated overrides the creation timestamp, in MySQL DATETIME form
	// (YYYY-MM-DD HH:MM:SS). Empty means "use the generator's clock".
	DateCreated string `json:"date_created,omitempty" yaml:"date_created,omitempty"`
}

// genderLabels maps the intake codes to the labels the form stores. Codes
// outside the map pass through verbatim; the form itself behaves that way.
var genderLabels = map[string]string{
	"M": "Masculin / Male",
	"F": "Féminin / Female",
}

func genderLabel(code string) string {
	if label, ok := genderLabels[code]; ok {
		return label
	}
	return code
}
