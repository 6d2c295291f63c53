package config

import "gopkg.in/yaml.v3"

// Runfile represents the structure of the tsprops.yaml run file.
type Runfile struct {
	Version string   `yaml:"version"`
	Runs    []RunDTO `yaml:"runs"`
}

// RunDTO represents a single run definition.
type RunDTO struct {
	Name string                 `yaml:"name"`
	Ws   *int32                 `yaml:"ws"`
	Int  map[string]IntValueDTO `yaml:"int"`
	Str  map[string]string      `yaml:"str"`
}

// IntValueDTO is an integer property value. It accepts either a bare integer,
// read with the default variant, or a mapping with var and value keys.
type IntValueDTO struct {
	Var   string `yaml:"var"`
	Value int32  `yaml:"value"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *IntValueDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v.Var = ""
		return node.Decode(&v.Value)
	}

	type plain IntValueDTO
	return node.Decode((*plain)(v))
}
