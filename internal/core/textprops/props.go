package textprops

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tsprops/internal/core/domain"
)

const (
	hashSeed uint64 = 23
	hashMul  uint64 = 31
)

// TextProps is the canonical, immutable set of properties of a text run.
// Instances are shared: never copy the struct, always pass *TextProps.
type TextProps struct {
	Bag
	hash uint64
	// sealed is set only for instances made by newTextProps.
	sealed bool
	// owner is the first cache that made this instance canonical.
	owner atomic.Pointer[Cache]
}

// empty is registered in every Cache on creation.
var empty = newTextProps(Bag{})

func newTextProps(b Bag) *TextProps {
	return &TextProps{Bag: b, hash: b.structuralHash(), sealed: true}
}

// Empty returns the process-wide instance without any properties.
func Empty() *TextProps {
	return empty
}

// FromWritingSystem returns the canonical instance holding only the writing
// system property with the default variant.
func FromWritingSystem(ws int32) *TextProps {
	return Default().FromWritingSystem(ws)
}

// FromMaps returns the canonical instance for the given content.
// The maps are copied and may be reused by the caller.
func FromMaps(ints map[domain.PropType]domain.IntPropValue, strs map[domain.PropType]string) *TextProps {
	return Default().FromMaps(ints, strs)
}

// Equal reports whether p and other hold the same integer and string
// properties. A nil receiver equals only nil.
func (p *TextProps) Equal(other *TextProps) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.Hash() != other.Hash() {
		return false
	}
	return slices.Equal(p.ints, other.ints) && slices.Equal(p.strs, other.strs)
}

// Hash returns the structural hash. It is stable within a process only; use
// Fingerprint for a value that can be compared across processes.
func (p *TextProps) Hash() uint64 {
	if !p.sealed {
		return p.structuralHash()
	}
	return p.hash
}

func (b *Bag) structuralHash() uint64 {
	intHash := hashSeed
	for _, e := range b.ints {
		intHash = intHash*hashMul + keyHash(e.key)
		intHash = intHash*hashMul + intValueHash(e.val)
	}

	strHash := hashSeed
	for _, e := range b.strs {
		strHash = strHash*hashMul + keyHash(e.key)
		strHash = strHash*hashMul + xxhash.Sum64String(e.val)
	}

	h := hashSeed
	h = h*hashMul + intHash
	h = h*hashMul + strHash
	return h
}

func keyHash(k domain.PropType) uint64 {
	return uint64(uint32(k))
}

func intValueHash(v domain.IntPropValue) uint64 {
	return uint64(uint32(v.Variant))*hashMul + uint64(uint32(v.Value))
}

// Fingerprint returns a hex digest of the content that does not depend on the
// process, suitable for reports and storage keys.
func (p *TextProps) Fingerprint() string {
	d := xxhash.New()
	var buf [4]byte

	writeInt := func(v int32) {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		_, _ = d.Write(buf[:])
	}

	_, _ = d.Write([]byte{'I'})
	writeInt(int32(len(p.ints)))
	for _, e := range p.ints {
		writeInt(int32(e.key))
		writeInt(int32(e.val.Variant))
		writeInt(e.val.Value)
	}

	_, _ = d.Write([]byte{'S'})
	writeInt(int32(len(p.strs)))
	for _, e := range p.strs {
		writeInt(int32(e.key))
		writeInt(int32(len(e.val)))
		_, _ = d.WriteString(e.val)
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

// WritingSystem returns the writing system id, if set.
func (p *TextProps) WritingSystem() (int32, bool) {
	v, ok := p.IntProp(domain.WritingSystem)
	return v.Value, ok
}

// Builder returns a builder seeded with a copy of p's properties, bound to
// the cache that made p canonical. Instances never interned use the default
// cache.
func (p *TextProps) Builder() *Builder {
	c := p.owner.Load()
	if c == nil {
		c = Default()
	}
	return c.Builder(p)
}

// String renders the properties as {ws=7 fontSize=12000/milliPoint | namedStyle="Title"}.
func (p *TextProps) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range p.ints {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.key.Name(domain.IntKind))
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(int(e.val.Value)))
		if e.val.Variant != domain.VarDefault {
			sb.WriteByte('/')
			sb.WriteString(e.val.Variant.String())
		}
	}
	if len(p.strs) > 0 {
		if len(p.ints) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("|")
		for _, e := range p.strs {
			sb.WriteByte(' ')
			sb.WriteString(e.key.Name(domain.StrKind))
			sb.WriteByte('=')
			sb.WriteString(strconv.Quote(e.val))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
