package rockrender

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"

	"github.com/Faultbox/rockgen/internal/config"
	"github.com/Faultbox/rockgen/internal/engine/shader"
	"github.com/Faultbox/rockgen/internal/engine/texture"
)

// Material holds surface parameters and their GPU textures.
type Material struct {
	cfg config.MaterialConfig

	diffuse      uint32
	specular     uint32
	normal       uint32
	hasNormalMap bool
}

// NewMaterial loads and uploads the textures named by cfg.
func NewMaterial(cfg config.MaterialConfig) (*Material, error) {
	imgs, err := texture.LoadMaterial(cfg)
	if err != nil {
		return nil, err
	}
	return &Material{
		cfg:          cfg,
		diffuse:      uploadTexture(imgs.Diffuse),
		specular:     uploadTexture(imgs.Specular),
		normal:       uploadTexture(imgs.Normal),
		hasNormalMap: imgs.HasNormalMap,
	}, nil
}

// Config returns the parameters the material was built from.
func (m *Material) Config() config.MaterialConfig {
	return m.cfg
}

// Bind sets the material uniforms on p and binds its textures.
func (m *Material) Bind(p *shader.Program) {
	c := m.cfg

	p.SetColor("uDiffuseColor", c.DiffuseColor)
	p.SetBool("uUseDiffuseMap", c.UseDiffuseMap)
	p.SetFloat("uOpacity", c.Opacity)

	p.SetColor("uSpecularColor", c.SpecularColor)
	p.SetFloat("uSpecularIntensity", c.SpecularIntensity)
	p.SetFloat("uShininess", max(c.Shininess, 1))
	p.SetBool("uUsePhong", c.UsePhong)
	p.SetBool("uUseNormalMap", m.hasNormalMap)

	p.SetColor("uAmbientColor", c.AmbientColor)
	p.SetFloat("uAmbientIntensity", c.AmbientIntensity)

	p.SetInt("uDiffuseMap", unitDiffuse)
	p.SetInt("uSpecularMap", unitSpecular)
	p.SetInt("uNormalMap", unitNormal)

	gl.ActiveTexture(gl.TEXTURE0 + unitDiffuse)
	gl.BindTexture(gl.TEXTURE_2D, m.diffuse)
	gl.ActiveTexture(gl.TEXTURE0 + unitSpecular)
	gl.BindTexture(gl.TEXTURE_2D, m.specular)
	gl.ActiveTexture(gl.TEXTURE0 + unitNormal)
	gl.BindTexture(gl.TEXTURE_2D, m.normal)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Translucent reports whether drawing needs blending.
func (m *Material) Translucent() bool {
	return m.cfg.Opacity < 1
}

// Release deletes the textures.
func (m *Material) Release() error {
	var err error
	for _, tex := range []*uint32{&m.diffuse, &m.specular, &m.normal} {
		if *tex == 0 {
			continue
		}
		gl.DeleteTextures(1, tex)
		*tex = 0
		if code := gl.GetError(); code != gl.NO_ERROR {
			err = multierr.Append(err, fmt.Errorf("deleting texture: gl error 0x%x", code))
		}
	}
	return err
}

// uploadTexture creates a mipmapped RGBA texture from img, repeating in u so
// the seam duplicates at u > 1 sample continuously.
func uploadTexture(img *image.NRGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	b := img.Bounds()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
