// Package store implements the data-access port over an in-memory table
// that can be persisted to a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DataAccess = (*Store)(nil)

// Store implements ports.DataAccess. When created with a path, every write is
// flushed to that file before the write returns.
type Store struct {
	path string
	mu   sync.RWMutex
	data snapshot
}

type snapshot struct {
	Times map[string]int64    `json:"times"`
	Props map[string]propsDTO `json:"props"`
}

type propsDTO struct {
	Ints map[domain.PropType]intDTO `json:"ints,omitempty"`
	Strs map[domain.PropType]string `json:"strs,omitempty"`
}

type intDTO struct {
	Var int32 `json:"var"`
	Val int32 `json:"val"`
}

// NewStore creates a Store. An empty path keeps the data in memory only;
// otherwise existing content is loaded from path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		data: snapshot{
			Times: make(map[string]int64),
			Props: make(map[string]propsDTO),
		},
	}
	if path == "" {
		return s, nil
	}

	s.path = filepath.Clean(path)
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func key(obj domain.ObjectID, field domain.FieldID) string {
	return fmt.Sprintf("%d/%d", obj, field)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read property store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal property store"), "path", s.path)
	}
	if snap.Times != nil {
		s.data.Times = snap.Times
	}
	if snap.Props != nil {
		s.data.Props = snap.Props
	}
	return nil
}

// Save writes the current content to the store's file. It is a no-op for an
// in-memory store.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked writes the snapshot through a temporary file and a rename, so the
// file always holds one complete snapshot. Callers hold s.mu for writing.
func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal property store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for property store")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary property store"), "path", s.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write property store"), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write property store"), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace property store"), "path", s.path)
	}
	return nil
}

// TimeProp returns the SilTime stored in the field.
func (s *Store) TimeProp(obj domain.ObjectID, field domain.FieldID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data.Times[key(obj, field)]
	if !ok {
		return 0, zerr.With(zerr.With(zerr.Wrap(domain.ErrTimeNotFound, "lookup failed"), "object", obj), "field", field)
	}
	return v, nil
}

// SetTime stores a SilTime in the field.
func (s *Store) SetTime(obj domain.ObjectID, field domain.FieldID, silTime int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Times[key(obj, field)] = silTime
	return s.saveLocked()
}

// PropsProp returns a copy of the property content stored in the field.
func (s *Store) PropsProp(obj domain.ObjectID, field domain.FieldID) (domain.RawProps, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.data.Props[key(obj, field)]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrPropNotFound, "lookup failed"), "object", obj)
		return domain.RawProps{}, zerr.With(err, "field", field)
	}

	raw := domain.RawProps{
		Ints: make(map[domain.PropType]domain.IntPropValue, len(dto.Ints)),
		Strs: maps.Clone(dto.Strs),
	}
	for k, v := range dto.Ints {
		raw.Ints[k] = domain.IntPropValue{Variant: domain.PropVar(v.Var), Value: v.Val}
	}
	return raw, nil
}

// SetPropsProp stores a copy of props in the field.
func (s *Store) SetPropsProp(obj domain.ObjectID, field domain.FieldID, props domain.RawProps) error {
	dto := propsDTO{
		Ints: make(map[domain.PropType]intDTO, len(props.Ints)),
		Strs: maps.Clone(props.Strs),
	}
	for k, v := range props.Ints {
		dto.Ints[k] = intDTO{Var: int32(v.Variant), Val: v.Value}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Props[key(obj, field)] = dto
	return s.saveLocked()
}
