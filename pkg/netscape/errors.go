package netscape

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// ErrorKind identifies which validation step of a parse failed.
type ErrorKind int

const (
	KindIoError ErrorKind = iota + 1
	KindDomainMissing
	KindIncludeSubdomainsMissing
	KindIncludeSubdomainsInvalid
	KindPathMissing
	KindSecureMissing
	KindSecureInvalid
	KindExpiresMissing
	KindExpiresInvalid
	KindNameMissing
	KindValueMissing
	KindTooManyElements
)

var kindNames = map[ErrorKind]string{
	KindIoError:                  "IoError",
	KindDomainMissing:            "DomainMissing",
	KindIncludeSubdomainsMissing: "IncludeSubdomainsMissing",
	KindIncludeSubdomainsInvalid: "IncludeSubdomainsInvalid",
	KindPathMissing:              "PathMissing",
	KindSecureMissing:            "SecureMissing",
	KindSecureInvalid:            "SecureInvalid",
	KindExpiresMissing:           "ExpiresMissing",
	KindExpiresInvalid:           "ExpiresInvalid",
	KindNameMissing:              "NameMissing",
	KindValueMissing:             "ValueMissing",
	KindTooManyElements:          "TooManyElements",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for use with errors.Is. A *ParseError matches the sentinel of
// its kind regardless of line number or wrapped cause.
var (
	ErrIo                       = &ParseError{Kind: KindIoError}
	ErrDomainMissing            = &ParseError{Kind: KindDomainMissing}
	ErrIncludeSubdomainsMissing = &ParseError{Kind: KindIncludeSubdomainsMissing}
	ErrIncludeSubdomainsInvalid = &ParseError{Kind: KindIncludeSubdomainsInvalid}
	ErrPathMissing              = &ParseError{Kind: KindPathMissing}
	ErrSecureMissing            = &ParseError{Kind: KindSecureMissing}
	ErrSecureInvalid            = &ParseError{Kind: KindSecureInvalid}
	ErrExpiresMissing           = &ParseError{Kind: KindExpiresMissing}
	ErrExpiresInvalid           = &ParseError{Kind: KindExpiresInvalid}
	ErrNameMissing              = &ParseError{Kind: KindNameMissing}
	ErrValueMissing             = &ParseError{Kind: KindValueMissing}
	ErrTooManyElements          = &ParseError{Kind: KindTooManyElements}
)

// ParseError describes why a cookies.txt buffer was rejected.
type ParseError struct {
	// Kind is the failed validation step.
	Kind ErrorKind
	// Line is the 1-based line number of the offending record, 0 when the
	// failure is not tied to a line.
	Line int
	// IOKind classifies the read failure for KindIoError, e.g. "NotFound".
	IOKind string
	// Err is the underlying cause: a *strconv.NumError for the Invalid
	// kinds, the read error for KindIoError, nil otherwise.
	Err error
}

func (e *ParseError) Error() string {
	msg := "netscape: "
	if e.Line > 0 {
		msg += "line " + strconv.Itoa(e.Line) + ": "
	}
	msg += e.Kind.String()
	if e.Kind == KindIoError && e.IOKind != "" {
		msg += " " + e.IOKind
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches any *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func newInvalid(kind ErrorKind, err error) *ParseError {
	return &ParseError{Kind: kind, Err: err}
}

func newIoError(err error) *ParseError {
	return &ParseError{Kind: KindIoError, IOKind: ioKind(err), Err: err}
}

// ioKind names the class of a read failure.
func ioKind(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "NotFound"
	case errors.Is(err, fs.ErrPermission):
		return "PermissionDenied"
	case errors.Is(err, fs.ErrInvalid):
		return "InvalidInput"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "UnexpectedEof"
	case errors.Is(err, os.ErrDeadlineExceeded):
		return "TimedOut"
	case errors.Is(err, fs.ErrClosed):
		return "Closed"
	default:
		return "Other"
	}
}
