package iprange

import (
	"errors"
	"fmt"
)

var (
	// ErrInput is returned when no range specification was supplied.
	ErrInput = errors.New("empty address specification")
	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("invalid address specification")
)

// ParseError reports a token that matches none of the accepted grammars.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %s", e.Token, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func newParseError(token, format string, args ...any) error {
	return &ParseError{Token: token, Reason: fmt.Sprintf(format, args...)}
}
