// Package config handles rockgen configuration loading and management.
package config

import "github.com/Faultbox/rockgen/pkg/rock"

// Config holds all rockgen settings.
type Config struct {
	Rock     rock.GenerationConfig `yaml:"rock"`
	Material MaterialConfig        `yaml:"material"`
	Graphics GraphicsConfig        `yaml:"graphics"`
	Output   OutputConfig          `yaml:"output"`
	Logging  LoggingConfig         `yaml:"logging"`

	// Path is the file the config was read from, empty for defaults only.
	Path string `yaml:"-"`
}

// Color is an RGB triple in [0, 1].
type Color [3]float32

// MaterialConfig holds the surface parameters bound when drawing a rock.
// Empty texture paths fall back to flat colours, or a checker for diffuse.
type MaterialConfig struct {
	DiffuseTexture string  `yaml:"diffuse_texture"`
	DiffuseColor   Color   `yaml:"diffuse_color"`
	UseDiffuseMap  bool    `yaml:"use_diffuse_map"`
	Checker        bool    `yaml:"checker"`
	Opacity        float32 `yaml:"opacity"`

	SpecularTexture   string  `yaml:"specular_texture"`
	SpecularColor     Color   `yaml:"specular_color"`
	SpecularIntensity float32 `yaml:"specular_intensity"`
	Shininess         float32 `yaml:"shininess"`
	UsePhong          bool    `yaml:"use_phong"` // false selects Blinn-Phong

	NormalTexture string `yaml:"normal_texture"`
	FlipNormalY   bool   `yaml:"flip_normal_y"`

	AmbientColor     Color   `yaml:"ambient_color"`
	AmbientIntensity float32 `yaml:"ambient_intensity"`
}

// GraphicsConfig holds display settings for the viewer.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// OutputConfig holds headless export settings. Empty paths are skipped.
type OutputConfig struct {
	OBJPath     string `yaml:"obj_path"`
	RMSHPath    string `yaml:"rmsh_path"`
	PreviewPath string `yaml:"preview_path"` // .png or .webp

	PreviewWidth  int `yaml:"preview_width"`
	PreviewHeight int `yaml:"preview_height"`
	Supersample   int `yaml:"supersample"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Rock: rock.DefaultGenerationConfig(),
		Material: MaterialConfig{
			DiffuseColor:      Color{0.55, 0.52, 0.48},
			UseDiffuseMap:     true,
			Checker:           true,
			Opacity:           1,
			SpecularColor:     Color{1, 1, 1},
			SpecularIntensity: 0.15,
			Shininess:         24,
			AmbientColor:      Color{1, 1, 1},
			AmbientIntensity:  0.2,
		},
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Output: OutputConfig{
			PreviewWidth:  512,
			PreviewHeight: 512,
			Supersample:   2,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Generation returns the rock section as a generation config.
func (c *Config) Generation() rock.GenerationConfig {
	return c.Rock
}
