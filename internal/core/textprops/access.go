package textprops

import (
	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports"
	"go.trai.ch/zerr"
)

// Load reads raw property content through da and returns its canonical
// instance from the default cache.
func Load(da ports.DataAccess, obj domain.ObjectID, field domain.FieldID) (*TextProps, error) {
	return Default().Load(da, obj, field)
}

// Load reads raw property content through da and returns its canonical
// instance from c.
func (c *Cache) Load(da ports.DataAccess, obj domain.ObjectID, field domain.FieldID) (*TextProps, error) {
	raw, err := da.PropsProp(obj, field)
	if err != nil {
		err = zerr.Wrap(err, "failed to read text properties")
		return nil, zerr.With(zerr.With(err, "object", obj), "field", field)
	}
	return c.FromMaps(raw.Ints, raw.Strs), nil
}

// Store writes the content of p through da.
func Store(da ports.DataAccess, obj domain.ObjectID, field domain.FieldID, p *TextProps) error {
	if err := da.SetPropsProp(obj, field, p.RawProps()); err != nil {
		err = zerr.Wrap(err, "failed to write text properties")
		return zerr.With(zerr.With(err, "object", obj), "field", field)
	}
	return nil
}
