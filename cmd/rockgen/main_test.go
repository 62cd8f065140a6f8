package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rockgen/internal/config"
)

func TestPreviewOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.PreviewWidth, cfg.Output.PreviewHeight = 320, 200
	cfg.Output.Supersample = 3
	cfg.Material.Shininess = 40

	opts, err := previewOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, 320, opts.Width)
	assert.Equal(t, 200, opts.Height)
	assert.Equal(t, 3, opts.Supersample)
	assert.Equal(t, [3]float32(cfg.Material.DiffuseColor), opts.BaseColor)
	assert.Equal(t, float32(40), opts.Light.Shininess)
	assert.NotNil(t, opts.Texture, "checker enabled by default")

	cfg.Material.UseDiffuseMap = false
	opts, err = previewOptions(cfg)
	require.NoError(t, err)
	assert.Nil(t, opts.Texture)
}
