package core

import "errors"

var (
	// ErrClassifierUnavailable wraps a failed or timed-out model call made
	// by a classifier.
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrClassifierMalformed wraps a model response that did not match the
	// classifier's expected schema.
	ErrClassifierMalformed = errors.New("classifier response malformed")

	// ErrStoreUnavailable wraps a memory log or vector store failure.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrSafetyCheckFailed marks a turn whose crisis assessment could not be
	// completed. The crisis classifier never fails open: callers receive
	// this error together with a fixed safety-unavailable response.
	ErrSafetyCheckFailed = errors.New("unable to assess safety")
)
