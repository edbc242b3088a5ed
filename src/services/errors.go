package services

import "errors"

var (
	// ErrFetchFailed marks transport failures against the sheet export URL.
	// The previously cached record set is left untouched.
	ErrFetchFailed = errors.New("fetching sheet data failed")
	// ErrParsingFailed marks content that could not be tokenized into rows.
	ErrParsingFailed = errors.New("parsing sales data failed")
	// ErrScriptURLMissing is returned before any network call when no write
	// endpoint is configured.
	ErrScriptURLMissing = errors.New("no write endpoint configured")
	// ErrScriptRejected marks a write endpoint that answered with anything
	// other than a success result.
	ErrScriptRejected = errors.New("write endpoint rejected entry")
)
