package lookup

import "errors"

// DefaultGroup is the reserved type group of default mappings. It must
// never populate a lookup.
const DefaultGroup = "_default_"

// ErrInvalidArgument is returned by WithAdded for a missing or reserved
// type group.
var ErrInvalidArgument = errors.New("invalid argument")
