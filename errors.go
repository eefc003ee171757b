package chord

import "errors"

// Sentinel errors returned by the package. Every error returned by chord
// wraps one of these, so callers can classify failures with errors.Is
// without parsing messages.
var (
	// ErrInvalidConfiguration reports ring parameters that make the layout
	// geometrically impossible, such as gaps that consume the full circle.
	ErrInvalidConfiguration = errors.New("chord: invalid configuration")

	// ErrInvalidArgument reports a malformed call: mismatched batch slice
	// lengths, widths given for only one end of a ribbon, a nil surface.
	ErrInvalidArgument = errors.New("chord: invalid argument")

	// ErrValueOutOfRange reports an index or ratio outside its documented
	// domain, such as a segment index past the end of the ring.
	ErrValueOutOfRange = errors.New("chord: value out of range")
)
