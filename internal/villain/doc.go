// Package villain models super villains: a two-part name, the weapons they
// fire, and the plans they slowly come up with.
//
// A SuperVillain is a plain value owned by its caller. Names are parsed from a
// single "First Last" display string; anything other than exactly two
// non-empty space-separated parts is rejected with a
// VILLAIN_MALFORMED_NAME domain error instead of silently truncating.
//
// Weapons are caller-supplied through the MegaWeapon capability, so the
// villain never needs to know what it is firing. Plans are the only blocking
// operation: they wait a fixed delay (one second by default) and honor
// context cancellation.
package villain
