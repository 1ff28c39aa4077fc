package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials aborts a submission before any remote call when
	// the platform access token or ad account id is not configured.
	ErrMissingCredentials = errors.New("missing advertising platform credentials")

	// ErrInvalidMediaPayload is returned when a media data URL has no
	// comma-delimited payload segment to decode.
	ErrInvalidMediaPayload = errors.New("invalid media payload: no data segment")

	// ErrImageHashMissing is returned when an image upload response contains
	// no content hash under the filename key or the images collection.
	ErrImageHashMissing = errors.New("image upload response contains no hash")

	// ErrVideoProcessingTimeout is returned when the readiness poll exhausts
	// all attempts without the video reaching the ready state.
	ErrVideoProcessingTimeout = errors.New("video processing did not finish in time")
)

// EncodingError wraps a failure to read the source media while building the
// transfer-safe data URL.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("media encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// CreationError is a failed entity-creation request against the remote
// platform. Remote carries the platform's error body verbatim.
type CreationError struct {
	Entity string // campaign, ad set, creative, ad
	Remote string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("%s creation failed: %s", e.Entity, e.Remote)
}

// MissingIdentifierError indicates a creation call reported success but
// yielded an empty id. It is an internal invariant violation; the
// orchestrator fails fast rather than propagating an undefined id.
type MissingIdentifierError struct {
	Entity string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("remote platform returned an empty %s id", e.Entity)
}
