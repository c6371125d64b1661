package llm

import (
	"errors"
	"fmt"
)

// classifies upstream completion failures
type UpstreamErrorKind string

const (
	// request never reached the API or the connection broke
	KindTransport UpstreamErrorKind = "transport"
	// the call exceeded its deadline
	KindTimeout UpstreamErrorKind = "timeout"
	// the API answered with a non-2xx status
	KindStatus UpstreamErrorKind = "status"
	// the API answered 2xx but the completion structure was missing or empty
	KindEnvelope UpstreamErrorKind = "envelope"
)

// UpstreamError is returned for every failure of the completion call.
// Detail carries diagnostics for logging; it never contains the credential.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int // HTTP status for KindStatus, zero otherwise
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("upstream %s: API request failed with status %d: %s", e.Kind, e.Status, e.Detail)
	default:
		return fmt.Sprintf("upstream %s: %s", e.Kind, e.Detail)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// reports whether err is an UpstreamError of the given kind
func IsUpstreamKind(err error, kind UpstreamErrorKind) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Kind == kind
}
