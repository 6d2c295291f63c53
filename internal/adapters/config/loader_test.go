package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsprops/internal/adapters/config"
	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeRunfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write run file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeRunfile(t, `
version: "1"
runs:
  - name: heading
    ws: 7
    int:
      fontSize: {var: milliPoint, value: 14000}
      bold: {var: toggle, value: 1}
    str:
      namedStyle: Heading 1
  - name: plain
    ws: 7
  - name: numeric
    int:
      "300": 5
    str:
      "9000": custom
`)

	runs, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "heading", runs[0].Name)
	assert.Equal(t, domain.RawProps{
		Ints: map[domain.PropType]domain.IntPropValue{
			domain.WritingSystem: {Variant: domain.VarDefault, Value: 7},
			domain.FontSize:      {Variant: domain.VarMilliPoint, Value: 14000},
			domain.Bold:          {Variant: domain.VarToggle, Value: 1},
		},
		Strs: map[domain.PropType]string{
			domain.NamedStyle: "Heading 1",
		},
	}, runs[0].Props)

	assert.Equal(t, "plain", runs[1].Name)
	assert.Equal(t, map[domain.PropType]domain.IntPropValue{
		domain.WritingSystem: {Value: 7},
	}, runs[1].Props.Ints)
	assert.Empty(t, runs[1].Props.Strs)

	assert.Equal(t, domain.IntPropValue{Value: 5}, runs[2].Props.Ints[domain.PropType(300)])
	assert.Equal(t, "custom", runs[2].Props.Strs[domain.PropType(9000)])
}

func TestLoad_EmptyStringIsDropped(t *testing.T) {
	path := writeRunfile(t, `
runs:
  - name: r
    str:
      charStyle: ""
`)

	runs, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, runs[0].Props.Strs)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		msg     string
	}{
		{
			name: "duplicate run",
			content: `
runs:
  - name: a
  - name: a
`,
			target: domain.ErrDuplicateRun,
		},
		{
			name: "missing name",
			content: `
runs:
  - ws: 1
`,
			target: domain.ErrInvalidConfig,
		},
		{
			name: "unknown int property",
			content: `
runs:
  - name: a
    int:
      sparkle: 1
`,
			target: domain.ErrUnknownPropType,
		},
		{
			name: "unknown variant",
			content: `
runs:
  - name: a
    int:
      bold: {var: loud, value: 1}
`,
			target: domain.ErrUnknownPropVar,
		},
		{
			name: "ws given twice",
			content: `
runs:
  - name: a
    ws: 1
    int:
      ws: 2
`,
			target: domain.ErrInvalidConfig,
		},
		{
			name: "int key under name and number",
			content: `
runs:
  - name: a
    int:
      ws: 1
      "1": 2
`,
			target: domain.ErrInvalidConfig,
		},
		{
			name: "str key under name and number",
			content: `
runs:
  - name: a
    str:
      fontFamily: Charis SIL
      "1": Gentium
`,
			target: domain.ErrInvalidConfig,
		},
		{
			name: "str key twice with one empty",
			content: `
runs:
  - name: a
    str:
      FONTFAMILY: ""
      fontFamily: Gentium
`,
			target: domain.ErrInvalidConfig,
		},
		{
			name:    "malformed yaml",
			content: "runs: [",
			msg:     "failed to parse run file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeRunfile(t, tt.content))
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "got %v", err)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_WarnsOnEmptyRunfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	path := writeRunfile(t, `version: "1"`)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	runs, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
