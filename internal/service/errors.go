package service

import "github.com/m-mizutani/goerr/v2"

// Error kinds surfaced by the gift pipeline. Callers match them with
// errors.Is; the handler layer maps each kind to an HTTP status.
//
// Malformed model output is not an error kind: the extractor returns a
// shorter (possibly empty) list.
var (
	// ErrInvalidInput marks a request whose required free-text query is
	// missing or empty.
	ErrInvalidInput = goerr.New("invalid input")

	// ErrGenerationFailure marks any failure of the completion client:
	// network, authentication, quota or an unusable payload.
	ErrGenerationFailure = goerr.New("generation failure")
)
