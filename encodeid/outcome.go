package encodeid

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome says how a Result's Text relates to the input.
type Outcome int

const (
	_ Outcome = iota // the zero value is not a valid outcome

	// OutcomeEncoded means Text is the encoded form of the input.
	OutcomeEncoded
	// OutcomeUnchanged means the input needed no encoding; use it as is.
	OutcomeUnchanged
	// OutcomePassthrough means the input violated the encoder's contract
	// after an error had already been reported, and was returned untouched.
	OutcomePassthrough
)

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the output of an encoding operation.
type Result struct {
	Text    string
	Outcome Outcome
}

// Changed returns the encoded text and true, or "" and false when the input
// needed no encoding or was passed through.
func (r Result) Changed() (string, bool) {
	if r.Outcome != OutcomeEncoded {
		return "", false
	}

	return r.Text, true
}
