package rules

import "errors"

// ErrInvalidRule indicates an unknown rule tag.
var ErrInvalidRule = errors.New("rules: invalid rule")
