package anilist

import "errors"

var (
	// ErrRequestFailed marks a non-2xx HTTP response other than rate
	// limiting. Never retried.
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedPage marks a paginated response whose shape does not
	// unwrap to a single pageInfo-bearing field. This indicates a bug in
	// the supplied query, so it fails loudly instead of guessing.
	ErrMalformedPage = errors.New("malformed paginated response")

	// ErrPageCapExceeded marks a pagination run that hit the configured
	// defensive page cap before the API reported a final page.
	ErrPageCapExceeded = errors.New("page cap exceeded")
)
