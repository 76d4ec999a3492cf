package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io"
	"io/fs"
)

// AssetSource opens named assets bundled with the application.
type AssetSource interface {
	Open(name string) (io.ReadCloser, error)
}

// FSAssets serves assets from a file system, typically os.DirFS on desktop.
type FSAssets struct {
	FS fs.FS
}

func (a FSAssets) Open(name string) (io.ReadCloser, error) {
	return a.FS.Open(name)
}

// Texture is a 2D RGBA texture object.
type Texture struct {
	gl     GL
	id     uint32
	Width  int
	Height int
}

// LoadTexture decodes the named image asset and uploads it.
func LoadTexture(gl GL, assets AssetSource, name string) (*Texture, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open texture asset %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture asset %q: %w", name, err)
	}
	return NewTexture(gl, img), nil
}

// NewTexture uploads img as an RGBA texture with linear filtering and
// clamped edges.
func NewTexture(gl GL, img image.Image) *Texture {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != rgba.Rect.Dx()*4 || rgba.Rect.Min != (image.Point{}) {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	t := &Texture{gl: gl, id: gl.CreateTexture(), Width: w, Height: h}
	gl.BindTexture(TEXTURE_2D, t.id)
	gl.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, int(LINEAR))
	gl.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, int(LINEAR))
	gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, int(CLAMP_TO_EDGE))
	gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, int(CLAMP_TO_EDGE))
	gl.TexImage2D(TEXTURE_2D, 0, w, h, RGBA, UNSIGNED_BYTE, rgba.Pix)
	gl.BindTexture(TEXTURE_2D, 0)
	return t
}

// ID returns the GL handle, 0 for a nil texture.
func (t *Texture) ID() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

// Release deletes the texture object. Safe to call more than once.
func (t *Texture) Release() {
	if t == nil || t.id == 0 {
		return
	}
	t.gl.DeleteTexture(t.id)
	t.id = 0
}
