package domainerr

import "errors"

// Kind classifies a failure into the closed taxonomy shared by every layer.
// Transport maps kinds to HTTP statuses; nothing below transport should
// inspect anything finer-grained than the kind.
type Kind int

const (
	// KindValidation is malformed input or a business-rule violation caught
	// before any persistence attempt.
	KindValidation Kind = iota
	// KindAlreadyExists is a uniqueness conflict, sourced from the storage
	// layer's constraint enforcement.
	KindAlreadyExists
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindInfra is any failure originating outside domain logic: storage
	// connectivity, hashing/signing internals, malformed persisted data.
	KindInfra
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAlreadyExists:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	default:
		return "infra"
	}
}

// Error is the single error type produced by the domain, application and
// infrastructure layers. Reason is human-readable; Err optionally carries the
// underlying cause (never shown to clients for KindInfra).
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

func AlreadyExists(reason string) *Error {
	return &Error{Kind: KindAlreadyExists, Reason: reason}
}

func NotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func Infra(reason string, err error) *Error {
	return &Error{Kind: KindInfra, Reason: reason, Err: err}
}

// KindOf classifies any error. Errors that did not come from the taxonomy are
// treated as infrastructure failures, which keeps the pass-through policy for
// unexpected port errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInfra
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
