package base45

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a decoding failure.
type Kind uint8

const (
	KindInvalidSymbol Kind = iota + 1 // symbol outside the alphabet
	KindOverflow                      // group value exceeds 16 bits
	KindInvalidUTF8                   // decoded bytes are not UTF-8 text
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidSymbol:
		return "invalid symbol"
	case KindOverflow:
		return "value overflow"
	case KindInvalidUTF8:
		return "invalid UTF-8"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Decoding failure causes, matched by DecodingError.Unwrap.
var (
	ErrInvalidSymbol = errors.New("base45: invalid symbol")
	ErrOverflow      = errors.New("base45: value overflow")
	ErrInvalidUTF8   = errors.New("base45: decoded data is not valid UTF-8")
)

// DecodingError reports why an input could not be decoded.
type DecodingError struct {
	Kind   Kind
	Input  string // complete input passed to the decoder
	Offset int    // byte offset into Input, or -1 when not tied to a symbol
}

func (e *DecodingError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("base45: %s at offset %d: %q", e.Kind, e.Offset, e.Input)
	}
	return fmt.Sprintf("base45: %s: %q", e.Kind, e.Input)
}

// Unwrap returns the sentinel error for the kind, so errors.Is(err,
// ErrOverflow) and friends work.
func (e *DecodingError) Unwrap() error {
	switch e.Kind {
	case KindInvalidSymbol:
		return ErrInvalidSymbol
	case KindOverflow:
		return ErrOverflow
	case KindInvalidUTF8:
		return ErrInvalidUTF8
	}
	return nil
}

func decodingError(kind Kind, input string, offset int) error {
	return errors.WithStack(&DecodingError{Kind: kind, Input: input, Offset: offset})
}
