package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rockgen/pkg/rock"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, rock.DefaultGenerationConfig(), cfg.Rock)
	assert.NoError(t, cfg.Rock.Validate())

	assert.Equal(t, 1280, cfg.Graphics.Width)
	assert.Equal(t, 720, cfg.Graphics.Height)
	assert.False(t, cfg.Graphics.Fullscreen)
	assert.True(t, cfg.Graphics.VSync)

	assert.Equal(t, float32(1), cfg.Material.Opacity)
	assert.True(t, cfg.Material.Checker)
	assert.False(t, cfg.Material.UsePhong, "Blinn-Phong by default")

	assert.Equal(t, 2, cfg.Output.Supersample)
	assert.Empty(t, cfg.Output.OBJPath)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rockgen.yaml")

	yamlContent := `
rock:
  width: 2
  height: 0.75
  depth: 1.5
  steps: 4
  planes: 20
  min_angle: 10
  max_angle: 80
  max_offset_percent: 35
  seed: 9001

material:
  diffuse_texture: "textures/granite.tga"
  diffuse_color: [0.2, 0.3, 0.4]
  use_phong: true
  flip_normal_y: true
  ambient_intensity: 0.5

graphics:
  width: 1920
  height: 1080
  fullscreen: true

output:
  obj_path: "out/rock.obj"
  preview_path: "out/rock.webp"
  supersample: 3

logging:
  level: "debug"
  log_file: "rockgen.log"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))

	gen := cfg.Generation()
	assert.Equal(t, float32(2), gen.Width)
	assert.Equal(t, float32(0.75), gen.Height)
	assert.Equal(t, float32(1.5), gen.Depth)
	assert.Equal(t, 4, gen.Steps)
	assert.Equal(t, 20, gen.Planes)
	assert.Equal(t, float32(10), gen.MinAngle)
	assert.Equal(t, float32(80), gen.MaxAngle)
	assert.Equal(t, float32(35), gen.MaxOffsetPercent)
	assert.Equal(t, int64(9001), gen.Seed)

	assert.Equal(t, "textures/granite.tga", cfg.Material.DiffuseTexture)
	assert.Equal(t, Color{0.2, 0.3, 0.4}, cfg.Material.DiffuseColor)
	assert.True(t, cfg.Material.UsePhong)
	assert.True(t, cfg.Material.FlipNormalY)
	assert.Equal(t, float32(0.5), cfg.Material.AmbientIntensity)
	// Untouched keys keep their defaults.
	assert.Equal(t, float32(1), cfg.Material.Opacity)

	assert.Equal(t, 1920, cfg.Graphics.Width)
	assert.True(t, cfg.Graphics.Fullscreen)

	assert.Equal(t, "out/rock.obj", cfg.Output.OBJPath)
	assert.Equal(t, "out/rock.webp", cfg.Output.PreviewPath)
	assert.Equal(t, 3, cfg.Output.Supersample)
	assert.Equal(t, 512, cfg.Output.PreviewWidth)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "rockgen.log", cfg.Logging.LogFile)
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
rock:
  steps: not a number
  invalid syntax here
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	assert.Error(t, loadFromFile(Default(), configPath))
}

func TestLoadFromFileMissing(t *testing.T) {
	assert.Error(t, loadFromFile(Default(), "/nonexistent/path/rockgen.yaml"))
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir), "ConfigDir should return absolute path, got %s", dir)
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	assert.Empty(t, findConfigFile())

	require.NoError(t, os.WriteFile(fileName, []byte("rock:\n  steps: 2\n"), 0644))
	assert.Equal(t, "./"+fileName, findConfigFile())
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		setup  func()
		verify func(*testing.T, *Config)
		reset  func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
			reset: func() { *flagDebug = false },
		},
		{
			name: "rock shape flags",
			setup: func() {
				*flagSteps = 5
				*flagPlanes = 0
				*flagRockWidth = 3
				*flagRockDepth = 0.5
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5, cfg.Rock.Steps)
				assert.Equal(t, 0, cfg.Rock.Planes, "zero planes is a valid override")
				assert.Equal(t, float32(3), cfg.Rock.Width)
				assert.Equal(t, float32(1), cfg.Rock.Height)
				assert.Equal(t, float32(0.5), cfg.Rock.Depth)
			},
			reset: func() {
				*flagSteps = -1
				*flagPlanes = -1
				*flagRockWidth = 0
				*flagRockDepth = 0
			},
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 77 },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(77), cfg.Rock.Seed)
			},
			reset: func() { *flagSeed = 0 },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Graphics.Fullscreen)
			},
			reset: func() { *flagFullscreen = false },
		},
		{
			name: "output flags",
			setup: func() {
				*flagOutOBJ = "a.obj"
				*flagOutRMSH = "a.rmsh"
				*flagOutPreview = "a.png"
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "a.obj", cfg.Output.OBJPath)
				assert.Equal(t, "a.rmsh", cfg.Output.RMSHPath)
				assert.Equal(t, "a.png", cfg.Output.PreviewPath)
			},
			reset: func() {
				*flagOutOBJ = ""
				*flagOutRMSH = ""
				*flagOutPreview = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.reset()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rockgen.yaml")
	yamlContent := `
rock:
  steps: 2
  planes: 30
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	*flagConfig = configPath
	*flagSteps = 4
	defer func() {
		*flagConfig = ""
		*flagSteps = -1
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Rock.Steps, "flag beats file")
	assert.Equal(t, 30, cfg.Rock.Planes, "file beats default")
	assert.Equal(t, configPath, cfg.Path)
}

func TestLoadRejectsInvalidRock(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rockgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("rock:\n  width: -1\n"), 0644))

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	_, err := Load()
	assert.True(t, errors.Is(err, rock.ErrInvalidConfiguration))
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rockgen.yaml")

	cfg := Default()
	cfg.Rock.Seed = 31337
	cfg.Material.DiffuseColor = Color{0.1, 0.2, 0.3}
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
