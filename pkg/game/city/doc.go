// Package city describes the host simulation that a cheat operates on.
//
// The host owns the zone grid, the lots and the occupants. This package only
// names the capabilities the cheat needs from them, as small interfaces that
// the caller injects, plus the host's fixed identifiers and enumerations.
package city
