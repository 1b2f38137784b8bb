package encodeid

import (
	"errors"
	"fmt"
)

// ErrContractViolation is wrapped by every *ContractError.
var ErrContractViolation = errors.New("identifier encoding contract violated")

// Reason classifies a contract violation.
type Reason string

const (
	ReasonInvalidIdentifier Reason = "invalid identifier"
	ReasonReservedMarker    Reason = "contains reserved marker"
	ReasonUnsafeByte        Reason = "unsafe single-byte character"
	ReasonMalformedUTF8     Reason = "malformed UTF-8"
)

// ContractError reports input the encoder must not be given. Seeing one
// with no earlier error reported means a bug in whatever produced the
// identifier.
type ContractError struct {
	Ident  string
	Reason Reason
	// Offset is the byte offset of the offending input, or -1 when the
	// identifier as a whole was rejected.
	Offset int
}

func (e *ContractError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("encode %q: %s", e.Ident, e.Reason)
	}

	return fmt.Sprintf("encode %q: %s at offset %d", e.Ident, e.Reason, e.Offset)
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}
