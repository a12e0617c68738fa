package catalog

import "errors"

// ErrProjectNotFound indicates no project in the snapshot matched.
var ErrProjectNotFound = errors.New("project not found")
