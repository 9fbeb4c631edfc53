package pipeline_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports/mocks"
	"go.trai.ch/swatch/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func TestConfigVariables(t *testing.T) {
	hook := pipeline.ConfigVariables{
		"editor": {"primary": domain.Raw("green")},
	}

	got, err := hook.Variables(domain.MustHandle("editor"), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Value{"primary": domain.Raw("green")}, got)

	got, err = hook.Variables(domain.MustHandle("main"), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVariableHooks_LaterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	handle := domain.MustHandle("main")
	base := domain.Variables{"primary": "red"}

	first := mocks.NewMockVariableHook(ctrl)
	first.EXPECT().Variables(handle, base).Return(map[string]domain.Value{
		"primary": domain.Raw("green"),
		"gap":     domain.Raw("4px"),
	}, nil)

	second := mocks.NewMockVariableHook(ctrl)
	second.EXPECT().
		Variables(handle, domain.Variables{"primary": "green", "gap": "4px"}).
		Return(map[string]domain.Value{"gap": domain.Raw("8px")}, nil)

	got, err := pipeline.VariableHooks{first, nil, second}.Variables(handle, base)
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Value{
		"primary": domain.Raw("green"),
		"gap":     domain.Raw("8px"),
	}, got)
	assert.Equal(t, domain.Variables{"primary": "red"}, base, "base is not modified")
}

func TestVariableHooks_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockVariableHook(ctrl)
	failing.EXPECT().Variables(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	skipped := mocks.NewMockVariableHook(ctrl)

	_, err := pipeline.VariableHooks{failing, skipped}.Variables(domain.MustHandle("main"), domain.Variables{})
	require.EqualError(t, err, "boom")
}
