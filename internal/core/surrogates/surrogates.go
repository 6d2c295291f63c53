// Package surrogates provides helpers for UTF-16 surrogate pairs over code
// unit slices.
package surrogates

import (
	"unicode/utf16"

	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/zerr"
)

// Surrogate ranges.
const (
	MinLead  = 0xD800
	MaxLead  = 0xDBFF
	MinTrail = 0xDC00
	MaxTrail = 0xDFFF
)

const (
	supplementaryBase = 0x10000
	maxRune           = 0x10FFFF
)

// IsLead reports whether u is the first unit of a surrogate pair.
func IsLead(u uint16) bool {
	return u >= MinLead && u <= MaxLead
}

// IsTrail reports whether u is the second unit of a surrogate pair.
func IsTrail(u uint16) bool {
	return u >= MinTrail && u <= MaxTrail
}

// Combine returns the code point encoded by a lead and trail surrogate.
// The result is meaningless unless IsLead(lead) and IsTrail(trail).
func Combine(lead, trail uint16) rune {
	return (rune(lead)-MinLead)<<10 + (rune(trail) - MinTrail) + supplementaryBase
}

// FromCodePoint encodes r as one or two UTF-16 code units.
func FromCodePoint(r rune) ([]uint16, error) {
	if r < 0 || r > maxRune || (r >= MinLead && r <= MaxTrail) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCodePoint, "failed to encode code point"), "code_point", r)
	}
	if r < supplementaryBase {
		return []uint16{uint16(r)}, nil
	}
	lead, trail := utf16.EncodeRune(r)
	return []uint16{uint16(lead), uint16(trail)}, nil
}

// NextChar returns the index of the character following the one at i,
// stepping over a whole surrogate pair when i is positioned on one.
func NextChar(units []uint16, i int) int {
	if IsLead(units[i]) && i < len(units)-1 && IsTrail(units[i+1]) {
		return i + 2
	}
	return i + 1
}

// PrevChar returns the index of the character preceding i. It assumes i is at
// the start of a character and steps back two units over a surrogate pair.
func PrevChar(units []uint16, i int) int {
	if i >= 2 && IsLead(units[i-2]) && IsTrail(units[i-1]) {
		return i - 2
	}
	return i - 1
}

// Count returns the number of characters in units, counting each valid
// surrogate pair once and each lone surrogate as its own character.
func Count(units []uint16) int {
	n := 0
	for i := 0; i < len(units); i = NextChar(units, i) {
		n++
	}
	return n
}
