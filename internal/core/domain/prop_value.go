package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PropVar is the variant tag qualifying how an integer property value is read.
type PropVar int32

const (
	VarDefault    PropVar = 0
	VarMilliPoint PropVar = 1
	VarRelative   PropVar = 2
	VarEnum       PropVar = 3
	VarToggle     PropVar = 4
	VarNinch      PropVar = 15
)

var propVarNames = map[PropVar]string{
	VarDefault:    "default",
	VarMilliPoint: "milliPoint",
	VarRelative:   "relative",
	VarEnum:       "enum",
	VarToggle:     "toggle",
	VarNinch:      "ninch",
}

func (v PropVar) String() string {
	if n, ok := propVarNames[v]; ok {
		return n
	}
	return strconv.Itoa(int(v))
}

// ParsePropVar resolves a variant name (case-insensitive) or a decimal tag.
// An empty string yields VarDefault.
func ParsePropVar(s string) (PropVar, error) {
	if s == "" {
		return VarDefault, nil
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return PropVar(n), nil
	}
	for v, n := range propVarNames {
		if strings.EqualFold(n, s) {
			return v, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownPropVar, "failed to parse property variant"), "name", s)
}

// IntPropValue is the value of an integer property.
// Two values are equal iff both fields are equal.
type IntPropValue struct {
	Variant PropVar
	Value   int32
}

// RawProps is unsorted property content as exchanged with storage and config.
type RawProps struct {
	Ints map[PropType]IntPropValue
	Strs map[PropType]string
}

// ObjectID identifies an object in the data-access layer.
type ObjectID int32

// FieldID identifies a field of an object in the data-access layer.
type FieldID int32

// RunSpec is a named run definition read from configuration.
type RunSpec struct {
	Name  string
	Props RawProps
}
