package encodeid

import (
	"strings"

	"asmname/internal/charclass"
	"asmname/internal/lex"
	"asmname/internal/scalar"
)

// Validator decides whether a candidate identifier is lexically valid.
type Validator interface {
	IsInvalidIdentifier(name string) bool
}

// ErrorState reports whether a compilation error has already been reported.
// Implementations must be safe for concurrent reads.
type ErrorState interface {
	SawErrors() bool
}

type noErrors struct{}

func (noErrors) SawErrors() bool { return false }

// Config configures an Encoder.
type Config struct {
	// Validator defaults to lex.Checker.
	Validator Validator
	// Errors defaults to a state that never reports errors, which makes
	// every contract violation a ContractError.
	Errors ErrorState
	// StrictUTF8 rejects malformed UTF-8 instead of decoding whatever bit
	// pattern is present.
	StrictUTF8 bool
}

// Encoder encodes identifiers. It is immutable and safe for concurrent use.
type Encoder struct {
	validator Validator
	errors    ErrorState
	strict    bool
}

// New creates an Encoder from cfg.
func New(cfg Config) *Encoder {
	e := &Encoder{
		validator: cfg.Validator,
		errors:    cfg.Errors,
		strict:    cfg.StrictUTF8,
	}
	if e.validator == nil {
		e.validator = lex.Checker{}
	}
	if e.errors == nil {
		e.errors = noErrors{}
	}

	return e
}

// Strict reports whether the encoder rejects malformed UTF-8.
func (e *Encoder) Strict() bool {
	return e.strict
}

// NeedsEncoding reports whether id contains any byte other than an ASCII
// letter, digit, underscore or dot.
func NeedsEncoding(id string) bool {
	for i := 0; i < len(id); i++ {
		if !charclass.IsSafe(id[i]) {
			return true
		}
	}

	return false
}

// Encode returns the assembler-safe form of id.
//
// id must be a valid identifier that does not contain ..u or ..U. If it is
// not, and no error has been reported yet, Encode returns a *ContractError.
// If an error has already been reported, id is returned unchanged with
// OutcomePassthrough.
func (e *Encoder) Encode(id string) (Result, error) {
	if e.validator.IsInvalidIdentifier(id) {
		return e.violation(id, ReasonInvalidIdentifier, -1)
	}

	if i := reservedMarkerIndex(id); i >= 0 {
		return e.violation(id, ReasonReservedMarker, i)
	}

	buf := make([]byte, 0, len(id))
	for off := 0; off < len(id); {
		sc, err := e.decode(id, off)
		if err != nil {
			return e.violation(id, ReasonMalformedUTF8, off)
		}

		switch {
		case !sc.MultiByte():
			if !charclass.IsSafe(id[off]) {
				return e.violation(id, ReasonUnsafeByte, off)
			}
			buf = append(buf, id[off])
		case sc.Rune < 0x10000:
			buf = append(buf, "..u"...)
			buf = appendHex(buf, uint32(sc.Rune), 4)
		default:
			buf = append(buf, "..U"...)
			buf = appendHex(buf, uint32(sc.Rune), 8)
		}

		off += sc.Len
	}

	return Result{Text: string(buf), Outcome: OutcomeEncoded}, nil
}

// MustEncode is like Encode but panics on a contract violation.
func (e *Encoder) MustEncode(id string) string {
	r, err := e.Encode(id)
	if err != nil {
		panic(err)
	}

	return r.Text
}

// SelectiveEncode returns id with OutcomeUnchanged when it needs no
// encoding, and the result of Encode otherwise.
func (e *Encoder) SelectiveEncode(id string) (Result, error) {
	if !NeedsEncoding(id) {
		return Result{Text: id, Outcome: OutcomeUnchanged}, nil
	}

	return e.Encode(id)
}

func (e *Encoder) decode(s string, off int) (scalar.Scalar, error) {
	if e.strict {
		return scalar.DecodeStrict(s, off)
	}

	return scalar.Decode(s, off), nil
}

// violation reads the error state exactly once.
func (e *Encoder) violation(id string, reason Reason, off int) (Result, error) {
	if e.errors.SawErrors() {
		return Result{Text: id, Outcome: OutcomePassthrough}, nil
	}

	return Result{}, &ContractError{Ident: id, Reason: reason, Offset: off}
}

func reservedMarkerIndex(id string) int {
	i := strings.Index(id, "..u")
	if j := strings.Index(id, "..U"); j >= 0 && (i < 0 || j < i) {
		i = j
	}

	return i
}
