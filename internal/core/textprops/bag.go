// Package textprops implements canonical, interned text-run properties.
//
// A TextProps value is immutable once created and is only ever produced by a
// Cache, which guarantees a single instance per distinct property content.
// Modified copies are made through a Builder.
package textprops

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"go.trai.ch/tsprops/internal/core/domain"
)

type intEntry struct {
	key domain.PropType
	val domain.IntPropValue
}

type strEntry struct {
	key domain.PropType
	val string
}

// Bag is a read-only view over integer and string properties, both stored
// sorted by ascending key.
type Bag struct {
	ints []intEntry
	strs []strEntry
}

// newBag copies the given maps into sorted storage. The maps are not retained.
func newBag(ints map[domain.PropType]domain.IntPropValue, strs map[domain.PropType]string) Bag {
	var b Bag
	if len(ints) > 0 {
		b.ints = make([]intEntry, 0, len(ints))
		for _, k := range slices.Sorted(maps.Keys(ints)) {
			b.ints = append(b.ints, intEntry{key: k, val: ints[k]})
		}
	}
	if len(strs) > 0 {
		b.strs = make([]strEntry, 0, len(strs))
		for _, k := range slices.Sorted(maps.Keys(strs)) {
			b.strs = append(b.strs, strEntry{key: k, val: strs[k]})
		}
	}
	return b
}

// IntProp returns the integer property stored under key.
func (b *Bag) IntProp(key domain.PropType) (domain.IntPropValue, bool) {
	i, ok := slices.BinarySearchFunc(b.ints, key, func(e intEntry, k domain.PropType) int {
		return cmp.Compare(e.key, k)
	})
	if !ok {
		return domain.IntPropValue{}, false
	}
	return b.ints[i].val, true
}

// StrProp returns the string property stored under key.
func (b *Bag) StrProp(key domain.PropType) (string, bool) {
	i, ok := slices.BinarySearchFunc(b.strs, key, func(e strEntry, k domain.PropType) int {
		return cmp.Compare(e.key, k)
	})
	if !ok {
		return "", false
	}
	return b.strs[i].val, true
}

// IntProps iterates the integer properties in ascending key order.
func (b *Bag) IntProps() iter.Seq2[domain.PropType, domain.IntPropValue] {
	return func(yield func(domain.PropType, domain.IntPropValue) bool) {
		for _, e := range b.ints {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// StrProps iterates the string properties in ascending key order.
func (b *Bag) StrProps() iter.Seq2[domain.PropType, string] {
	return func(yield func(domain.PropType, string) bool) {
		for _, e := range b.strs {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// IntKeys returns the integer property keys in ascending order.
func (b *Bag) IntKeys() []domain.PropType {
	keys := make([]domain.PropType, len(b.ints))
	for i, e := range b.ints {
		keys[i] = e.key
	}
	return keys
}

// StrKeys returns the string property keys in ascending order.
func (b *Bag) StrKeys() []domain.PropType {
	keys := make([]domain.PropType, len(b.strs))
	for i, e := range b.strs {
		keys[i] = e.key
	}
	return keys
}

// IntCount returns the number of integer properties.
func (b *Bag) IntCount() int { return len(b.ints) }

// StrCount returns the number of string properties.
func (b *Bag) StrCount() int { return len(b.strs) }

// RawProps returns a fresh, caller-owned copy of the content.
func (b *Bag) RawProps() domain.RawProps {
	raw := domain.RawProps{
		Ints: make(map[domain.PropType]domain.IntPropValue, len(b.ints)),
		Strs: make(map[domain.PropType]string, len(b.strs)),
	}
	for _, e := range b.ints {
		raw.Ints[e.key] = e.val
	}
	for _, e := range b.strs {
		raw.Strs[e.key] = e.val
	}
	return raw
}
