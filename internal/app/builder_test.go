package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsprops/internal/adapters/telemetry"
	"go.trai.ch/tsprops/internal/app"
	"go.trai.ch/tsprops/internal/core/ports/mocks"
	"go.trai.ch/tsprops/internal/core/textprops"
	"go.uber.org/mock/gomock"
)

func TestNewComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	tel := telemetry.NewNoOp()
	a := app.New(mocks.NewMockConfigLoader(ctrl), mocks.NewMockDataAccess(ctrl), log, tel, textprops.NewCache())

	components := app.NewComponents(a, log, tel)
	require.NotNil(t, components)
	assert.Same(t, a, components.App)
	assert.Equal(t, log, components.Logger)
	assert.Equal(t, tel, components.Telemetry)
}

func TestComponentsNode_ResolvesGraph(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background(), graft.DisableCache())
	require.NoError(t, err)

	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
}
