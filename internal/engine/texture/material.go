package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/rockgen/internal/config"
)

const checkerSize, checkerCells = 256, 16

var (
	checkerLight = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	checkerDark  = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	white        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	flatNormal   = color.NRGBA{R: 128, G: 128, B: 255, A: 255}
)

// MaterialSet holds the decoded texture images of a material.
type MaterialSet struct {
	Diffuse  *image.NRGBA
	Specular *image.NRGBA
	Normal   *image.NRGBA

	// HasNormalMap is false when Normal is the flat fallback.
	HasNormalMap bool
}

// LoadMaterial decodes the textures named by cfg. Missing slots get a
// checker (diffuse, when enabled) or a neutral 1x1 image.
func LoadMaterial(cfg config.MaterialConfig) (MaterialSet, error) {
	var imgs MaterialSet
	var err error

	switch {
	case cfg.DiffuseTexture != "":
		if imgs.Diffuse, err = Load(cfg.DiffuseTexture); err != nil {
			return imgs, fmt.Errorf("diffuse texture: %w", err)
		}
	case cfg.Checker:
		imgs.Diffuse = Checker(checkerSize, checkerCells, checkerLight, checkerDark)
	default:
		imgs.Diffuse = Solid(white)
	}

	if cfg.SpecularTexture != "" {
		if imgs.Specular, err = Load(cfg.SpecularTexture); err != nil {
			return imgs, fmt.Errorf("specular texture: %w", err)
		}
	} else {
		imgs.Specular = Solid(white)
	}

	if cfg.NormalTexture != "" {
		if imgs.Normal, err = Load(cfg.NormalTexture); err != nil {
			return imgs, fmt.Errorf("normal texture: %w", err)
		}
		if cfg.FlipNormalY {
			FlipGreen(imgs.Normal)
		}
		imgs.HasNormalMap = true
	} else {
		imgs.Normal = Solid(flatNormal)
	}

	return imgs, nil
}
