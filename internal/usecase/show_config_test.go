package usecase

import (
	"context"
	"testing"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/genesis-cli/genesis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		GlobalConfig: domain.ConfigInfo{Path: "/home/u/.config/genesis/config.toml"},
		LocalConfig:  domain.ConfigInfo{Path: "/work/.genesis.toml", Content: "[log]\nlevel = 'debug'\n", Exists: true},
	}
	loader := testutil.NewMockConfigLoader()
	loader.Config.Log.Level = "debug"

	out, err := NewShowConfig(manager, loader).Execute(context.Background(), ShowConfigInput{})
	require.NoError(t, err)
	assert.Equal(t, manager.GlobalConfig, out.GlobalConfig)
	assert.Equal(t, manager.LocalConfig, out.LocalConfig)
	assert.Equal(t, "debug", out.EffectiveConfig.Log.Level)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.LoadErr = assert.AnError

	_, err := NewShowConfig(&testutil.MockConfigManager{}, loader).Execute(context.Background(), ShowConfigInput{})
	assert.ErrorIs(t, err, assert.AnError)
}
