// Package config loads run definitions from YAML run files.
package config

import (
	"os"

	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the run file used when no path is given.
const DefaultFilename = "tsprops.yaml"

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the run file at path.
func (l *Loader) Load(path string) ([]domain.RunSpec, error) {
	runs, err := Load(path)
	if err != nil {
		return nil, err
	}
	if l.Logger != nil && len(runs) == 0 {
		l.Logger.Warn("run file " + path + " defines no runs")
	}
	return runs, nil
}

// Load reads a run file from the given path and resolves every property and
// variant name to its domain value.
func Load(path string) ([]domain.RunSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read run file"), "path", path)
	}

	var runfile Runfile
	if err := yaml.Unmarshal(data, &runfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse run file"), "path", path)
	}

	seen := make(map[string]bool, len(runfile.Runs))
	runs := make([]domain.RunSpec, 0, len(runfile.Runs))
	for i, dto := range runfile.Runs {
		if dto.Name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "run has no name"), "index", i)
		}
		if seen[dto.Name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateRun, "failed to load run file"), "run", dto.Name)
		}
		seen[dto.Name] = true

		props, err := resolveProps(dto)
		if err != nil {
			return nil, zerr.With(err, "run", dto.Name)
		}
		runs = append(runs, domain.RunSpec{Name: dto.Name, Props: props})
	}

	return runs, nil
}

func resolveProps(dto RunDTO) (domain.RawProps, error) {
	props := domain.RawProps{
		Ints: make(map[domain.PropType]domain.IntPropValue, len(dto.Int)+1),
		Strs: make(map[domain.PropType]string, len(dto.Str)),
	}

	for name, v := range dto.Int {
		key, err := domain.ParsePropType(name, domain.IntKind)
		if err != nil {
			return domain.RawProps{}, err
		}
		if _, dup := props.Ints[key]; dup {
			return domain.RawProps{}, duplicateKey(name, key)
		}
		variant, err := domain.ParsePropVar(v.Var)
		if err != nil {
			return domain.RawProps{}, zerr.With(err, "property", name)
		}
		props.Ints[key] = domain.IntPropValue{Variant: variant, Value: v.Value}
	}

	if dto.Ws != nil {
		if _, dup := props.Ints[domain.WritingSystem]; dup {
			return domain.RawProps{}, zerr.Wrap(domain.ErrInvalidConfig, "ws given both as shorthand and as int property")
		}
		props.Ints[domain.WritingSystem] = domain.IntPropValue{Variant: domain.VarDefault, Value: *dto.Ws}
	}

	// Empty values are dropped but still claim their key.
	seen := make(map[domain.PropType]bool, len(dto.Str))
	for name, v := range dto.Str {
		key, err := domain.ParsePropType(name, domain.StrKind)
		if err != nil {
			return domain.RawProps{}, err
		}
		if seen[key] {
			return domain.RawProps{}, duplicateKey(name, key)
		}
		seen[key] = true
		if v == "" {
			continue
		}
		props.Strs[key] = v
	}

	return props, nil
}

func duplicateKey(name string, key domain.PropType) error {
	err := zerr.Wrap(domain.ErrInvalidConfig, "property given twice under different names")
	return zerr.With(zerr.With(err, "property", name), "key", int32(key))
}
