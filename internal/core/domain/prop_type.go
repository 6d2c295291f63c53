package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PropType identifies a text property. Integer and string properties use
// separate key spaces, so the same number may name different properties
// depending on the mapping it is stored in.
type PropType int32

// Integer-valued property keys.
const (
	WritingSystem  PropType = 1
	Italic         PropType = 2
	Bold           PropType = 3
	Superscript    PropType = 4
	Underline      PropType = 5
	FontSize       PropType = 6
	Offset         PropType = 7
	ForeColor      PropType = 8
	BackColor      PropType = 9
	UnderColor     PropType = 10
	BaseWs         PropType = 16
	Align          PropType = 17
	FirstIndent    PropType = 18
	LeadingIndent  PropType = 19
	TrailingIndent PropType = 20
	SpaceBefore    PropType = 21
	SpaceAfter     PropType = 22
	LineHeight     PropType = 24
	RightToLeft    PropType = 128
)

// String-valued property keys.
const (
	FontFamily     PropType = 1
	CharStyle      PropType = 2
	ParaStyle      PropType = 3
	Tags           PropType = 5
	ObjData        PropType = 6
	FontVariations PropType = 7
	NamedStyle     PropType = 133
	FieldName      PropType = 9998
)

var intPropNames = map[PropType]string{
	WritingSystem:  "ws",
	Italic:         "italic",
	Bold:           "bold",
	Superscript:    "superscript",
	Underline:      "underline",
	FontSize:       "fontSize",
	Offset:         "offset",
	ForeColor:      "foreColor",
	BackColor:      "backColor",
	UnderColor:     "underColor",
	BaseWs:         "baseWs",
	Align:          "align",
	FirstIndent:    "firstIndent",
	LeadingIndent:  "leadingIndent",
	TrailingIndent: "trailingIndent",
	SpaceBefore:    "spaceBefore",
	SpaceAfter:     "spaceAfter",
	LineHeight:     "lineHeight",
	RightToLeft:    "rightToLeft",
}

var strPropNames = map[PropType]string{
	FontFamily:     "fontFamily",
	CharStyle:      "charStyle",
	ParaStyle:      "paraStyle",
	Tags:           "tags",
	ObjData:        "objData",
	FontVariations: "fontVariations",
	NamedStyle:     "namedStyle",
	FieldName:      "fieldName",
}

// Name returns the display name of the key within the given mapping, or its
// number when the key has no registered name.
func (t PropType) Name(kind PropKind) string {
	names := intPropNames
	if kind == StrKind {
		names = strPropNames
	}
	if n, ok := names[t]; ok {
		return n
	}
	return strconv.Itoa(int(t))
}

// ParsePropType resolves a property name (case-insensitive) or a decimal key
// within the given mapping.
func ParsePropType(s string, kind PropKind) (PropType, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return PropType(n), nil
	}

	names := intPropNames
	if kind == StrKind {
		names = strPropNames
	}
	for k, n := range names {
		if strings.EqualFold(n, s) {
			return k, nil
		}
	}

	err := zerr.With(zerr.Wrap(ErrUnknownPropType, "failed to parse property type"), "name", s)
	return 0, zerr.With(err, "kind", kind.String())
}

// PropKind selects the integer or the string property mapping.
type PropKind uint8

const (
	// IntKind selects integer-valued properties.
	IntKind PropKind = iota
	// StrKind selects string-valued properties.
	StrKind
)

func (k PropKind) String() string {
	if k == StrKind {
		return "string"
	}
	return "int"
}
