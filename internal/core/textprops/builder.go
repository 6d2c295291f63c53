package textprops

import "go.trai.ch/tsprops/internal/core/domain"

// clearValue is the variant/value pair that removes an integer property in
// SetIntProp.
const clearValue = -1

// Builder stages changes to a copy of some properties and produces a new
// canonical TextProps on Build. It is owned by one goroutine at a time.
type Builder struct {
	cache *Cache
	ints  map[domain.PropType]domain.IntPropValue
	strs  map[domain.PropType]string
}

// NewBuilder returns an empty builder bound to the default cache.
func NewBuilder() *Builder {
	return Default().NewBuilder()
}

// NewBuilder returns an empty builder bound to c.
func (c *Cache) NewBuilder() *Builder {
	return c.Builder(empty)
}

// Builder returns a builder bound to c and seeded with a copy of p.
func (c *Cache) Builder(p *TextProps) *Builder {
	b := &Builder{
		cache: c,
		ints:  make(map[domain.PropType]domain.IntPropValue, len(p.ints)),
		strs:  make(map[domain.PropType]string, len(p.strs)),
	}
	for _, e := range p.ints {
		b.ints[e.key] = e.val
	}
	for _, e := range p.strs {
		b.strs[e.key] = e.val
	}
	return b
}

// SetIntProp sets an integer property. Passing -1 for both variant and value
// removes the property.
func (b *Builder) SetIntProp(key domain.PropType, variant domain.PropVar, value int32) *Builder {
	if variant == clearValue && value == clearValue {
		delete(b.ints, key)
		return b
	}
	b.ints[key] = domain.IntPropValue{Variant: variant, Value: value}
	return b
}

// SetStrProp sets a string property. An empty value removes the property.
func (b *Builder) SetStrProp(key domain.PropType, value string) *Builder {
	if value == "" {
		delete(b.strs, key)
		return b
	}
	b.strs[key] = value
	return b
}

// Clear removes the property stored under key in the mapping selected by kind.
func (b *Builder) Clear(key domain.PropType, kind domain.PropKind) *Builder {
	if kind == domain.StrKind {
		delete(b.strs, key)
	} else {
		delete(b.ints, key)
	}
	return b
}

// IntProp returns the staged integer property.
func (b *Builder) IntProp(key domain.PropType) (domain.IntPropValue, bool) {
	v, ok := b.ints[key]
	return v, ok
}

// StrProp returns the staged string property.
func (b *Builder) StrProp(key domain.PropType) (string, bool) {
	v, ok := b.strs[key]
	return v, ok
}

// IntCount returns the number of staged integer properties.
func (b *Builder) IntCount() int { return len(b.ints) }

// StrCount returns the number of staged string properties.
func (b *Builder) StrCount() int { return len(b.strs) }

// Apply stages every property of raw on top of the current state.
func (b *Builder) Apply(raw domain.RawProps) *Builder {
	for k, v := range raw.Ints {
		b.SetIntProp(k, v.Variant, v.Value)
	}
	for k, v := range raw.Strs {
		b.SetStrProp(k, v)
	}
	return b
}

// Build returns the canonical instance for the staged content. The builder
// remains usable afterwards and later changes do not affect the result.
func (b *Builder) Build() *TextProps {
	return b.cache.Intern(newTextProps(newBag(b.ints, b.strs)))
}

// BuildLoaded is Build that also reports whether the bound cache already held
// an instance with the staged content.
func (b *Builder) BuildLoaded() (*TextProps, bool) {
	return b.cache.LoadOrStore(newTextProps(newBag(b.ints, b.strs)))
}
