package registry

import "errors"

// Validation failures are returned before any mutation happens, so a
// failed call never leaves partial state behind.
var (
	ErrUnknownOffice = errors.New("unknown office")
	ErrUnknownFloor  = errors.New("unknown floor")
	ErrFloorFull     = errors.New("floor at maximum room capacity")
	ErrDuplicateRoom = errors.New("room already exists")
	ErrNotFound      = errors.New("room not found")
)
