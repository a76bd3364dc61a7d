package registry

import "errors"

// ErrUnknown indicates a lookup for a node name that was never registered.
var ErrUnknown = errors.New("registry: unknown node name")
