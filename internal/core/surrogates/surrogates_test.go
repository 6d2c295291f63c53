package surrogates_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/surrogates"
)

const (
	lead  uint16 = 0xD83D
	trail uint16 = 0xDE00
)

func TestClassify(t *testing.T) {
	tests := []struct {
		unit    uint16
		isLead  bool
		isTrail bool
	}{
		{unit: 0x0041},
		{unit: 0xD7FF},
		{unit: 0xD800, isLead: true},
		{unit: 0xDBFF, isLead: true},
		{unit: 0xDC00, isTrail: true},
		{unit: 0xDFFF, isTrail: true},
		{unit: 0xE000},
		{unit: lead, isLead: true},
		{unit: trail, isTrail: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.isLead, surrogates.IsLead(tt.unit), "IsLead(%#x)", tt.unit)
		assert.Equal(t, tt.isTrail, surrogates.IsTrail(tt.unit), "IsTrail(%#x)", tt.unit)
	}
}

func TestCombine(t *testing.T) {
	assert.Equal(t, rune(0x1F600), surrogates.Combine(lead, trail))
	assert.Equal(t, rune(0x10000), surrogates.Combine(0xD800, 0xDC00))
	assert.Equal(t, rune(0x10FFFF), surrogates.Combine(0xDBFF, 0xDFFF))
}

func TestFromCodePoint(t *testing.T) {
	units, err := surrogates.FromCodePoint(0x1F600)
	require.NoError(t, err)
	assert.Equal(t, []uint16{lead, trail}, units)

	units, err = surrogates.FromCodePoint('A')
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x41}, units)

	for _, r := range []rune{-1, 0xD800, 0xDFFF, 0x110000} {
		_, err := surrogates.FromCodePoint(r)
		assert.True(t, errors.Is(err, domain.ErrInvalidCodePoint), "code point %#x", r)
	}
}

func TestNextChar(t *testing.T) {
	units := []uint16{'a', lead, trail, 'b'}

	assert.Equal(t, 1, surrogates.NextChar(units, 0))
	assert.Equal(t, 3, surrogates.NextChar(units, 1))
	assert.Equal(t, 4, surrogates.NextChar(units, 3))
}

func TestNextChar_Malformed(t *testing.T) {
	// Lone lead at the end.
	assert.Equal(t, 2, surrogates.NextChar([]uint16{'a', lead}, 1))
	// Lead followed by a non-trail.
	assert.Equal(t, 1, surrogates.NextChar([]uint16{lead, 'a'}, 0))
	// Positioned on a trail.
	assert.Equal(t, 2, surrogates.NextChar([]uint16{lead, trail}, 1))
	// Reversed pair.
	assert.Equal(t, 1, surrogates.NextChar([]uint16{trail, lead}, 0))
}

func TestPrevChar(t *testing.T) {
	units := []uint16{'a', lead, trail, 'b'}

	assert.Equal(t, 3, surrogates.PrevChar(units, 4))
	assert.Equal(t, 1, surrogates.PrevChar(units, 3))
	assert.Equal(t, 0, surrogates.PrevChar(units, 1))
}

func TestPrevChar_Malformed(t *testing.T) {
	assert.Equal(t, 1, surrogates.PrevChar([]uint16{'a', trail}, 2))
	assert.Equal(t, 1, surrogates.PrevChar([]uint16{lead, lead}, 2))
	assert.Equal(t, 0, surrogates.PrevChar([]uint16{trail}, 1))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, surrogates.Count(nil))
	assert.Equal(t, 3, surrogates.Count([]uint16{'a', lead, trail, 'b'}))
	assert.Equal(t, 3, surrogates.Count([]uint16{trail, lead, 'x'}))
}
