package domain

import "errors"

// The messages end up verbatim on the plugin output line.
var (
	ErrAccountDataMissing = errors.New("Account data missing in API return")
	ErrExpiryMissing      = errors.New("Expiry date missing in API return")
)
