package runner

import "errors"

// ErrNoCases indicates the runner was built without problems or solvers.
var ErrNoCases = errors.New("runner: no cases to run")
