package tui

import "errors"

// ErrMissingOptionsService indicates the picker was constructed without an
// options service.
var ErrMissingOptionsService = errors.New("options service is required")
