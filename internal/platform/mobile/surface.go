//go:build android

package mobile

import (
	"io"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/gl"

	"firstgame/internal/render"
)

// The app runtime creates its EGL surface with 8-8-8 colour and a 16-bit
// depth buffer; that is the only config on offer.
var nativeConfig = render.FramebufferConfig{Red: 8, Green: 8, Blue: 8, Depth: 16}

// appSurface is the window surface the app runtime hands over while the
// activity is visible. The runtime owns display, surface and context.
type appSurface struct {
	app   app.App
	glctx gl.Context

	released bool
}

func (s *appSurface) Configs() []render.FramebufferConfig {
	return []render.FramebufferConfig{nativeConfig}
}

func (s *appSurface) Bind(render.FramebufferConfig) (render.GL, error) {
	return esGL{ctx: s.glctx}, nil
}

func (s *appSurface) Profile() render.Profile { return render.ProfileES2 }

func (s *appSurface) SwapBuffers() {
	if !s.released {
		s.app.Publish()
	}
}

func (s *appSurface) Release() {
	s.released = true
	s.glctx = nil
}

// apkAssets reads from the APK asset store.
type apkAssets struct{}

func (apkAssets) Open(name string) (io.ReadCloser, error) {
	return asset.Open(name)
}
