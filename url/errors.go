/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package url

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorCode names a stable class of parse failure, independent of the
// human-readable message carried by ParseError. Callers that need to branch
// on failure kind should switch on Code rather than match Error() text.
type ErrorCode int

const (
	// ErrOther covers kindError values that don't map to a named code, such
	// as lenient internal-consistency checks.
	ErrOther ErrorCode = iota
	ErrEmptyHost
	ErrIdnaError
	ErrInvalidPort
	ErrInvalidIpv4Address
	ErrInvalidIpv6Address
	ErrInvalidDomainCharacter
	ErrRelativeURLWithoutBase
	ErrRelativeURLWithCannotBeABaseBase
	ErrSetHostOnCannotBeABaseURL
	ErrFileURLMissingHost
	ErrOverflow
)

// String renders the stable name used in tests and diagnostics.
func (c ErrorCode) String() string {
	switch c {
	case ErrEmptyHost:
		return "EmptyHost"
	case ErrIdnaError:
		return "IdnaError"
	case ErrInvalidPort:
		return "InvalidPort"
	case ErrInvalidIpv4Address:
		return "InvalidIpv4Address"
	case ErrInvalidIpv6Address:
		return "InvalidIpv6Address"
	case ErrInvalidDomainCharacter:
		return "InvalidDomainCharacter"
	case ErrRelativeURLWithoutBase:
		return "RelativeUrlWithoutBase"
	case ErrRelativeURLWithCannotBeABaseBase:
		return "RelativeUrlWithCannotBeABaseBase"
	case ErrSetHostOnCannotBeABaseURL:
		return "SetHostOnCannotBeABaseUrl"
	case ErrFileURLMissingHost:
		return "FileUrlMissingHost"
	case ErrOverflow:
		return "Overflow"
	default:
		return "Other"
	}
}

// ParseError is the error type returned by every parsing function in this
// package. It carries a descriptive message, a stable Code, and may wrap a
// more specific internal error.
type ParseError struct {
	Message string
	Code    ErrorCode
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("url: parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// kindError is the internal error type produced by the parser and host
// parser. It carries a human message plus optional offending character or
// free-form detail, mirroring the structure of errors from a hand-written
// recursive-descent parser.
type kindError struct {
	message string
	code    ErrorCode
	char    byte
	hasChar bool
	details string
}

// Error formats the error message with any available character or detail.
func (e *kindError) Error() string {
	msg := e.message
	if e.hasChar {
		return fmt.Sprintf("%s '%c'", msg, e.char)
	}
	if e.details != "" {
		return fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

func errKind(code ErrorCode, message string) *kindError {
	return &kindError{code: code, message: message}
}

func errKindChar(code ErrorCode, message string, c byte) *kindError {
	return &kindError{code: code, message: message, char: c, hasChar: true}
}

func errKindDetails(code ErrorCode, message, details string) *kindError {
	return &kindError{code: code, message: message, details: details}
}

func asParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return &ParseError{Message: ke.Error(), Code: ke.code, Err: nil}
	}
	return &ParseError{Message: err.Error(), Code: ErrOther, Err: err}
}

// SlogViolationLogger adapts a *slog.Logger into the func(string) shape
// ParseOptions.OnSyntaxViolation expects, so callers who want structured
// logs for non-fatal syntax violations don't have to write their own
// closure. Each violation is logged at Debug level with the message as the
// "violation" attribute.
func SlogViolationLogger(logger *slog.Logger) func(string) {
	return func(message string) {
		logger.Debug("url: syntax violation", slog.String("violation", message))
	}
}
