//go:build !android

// Package desktop runs the game in a glfw window.
package desktop

import (
	"errors"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"firstgame/internal/audio"
	"firstgame/internal/config"
	"firstgame/internal/logsink"
	"firstgame/internal/platform"
	"firstgame/internal/render"
)

// assetDir is where config.yaml is looked up before any config is loaded.
func assetDir() string {
	if v, ok := os.LookupEnv(config.EnvAssets); ok && v != "" {
		return v
	}
	return config.Default().Assets
}

// Run opens the window and drives the game until the window closes or Esc
// is pressed.
func Run() error {
	runtime.LockOSThread()

	cfg, cfgErr := platform.LoadConfig(render.FSAssets{FS: os.DirFS(assetDir())}, os.LookupEnv)
	platform.SetupLogging(os.Stderr, cfg, cfgErr)
	log := logsink.For(logsink.TagPlatform)

	// A failed device leaves sound silent.
	sound, _ := audio.New(cfg.Audio)
	defer sound.Close()

	surface, err := newWindowSurface(cfg.Window)
	if err != nil {
		return err
	}

	host := platform.NewHost(cfg.Game, sound)
	rend := render.NewRenderer(surface, render.FSAssets{FS: os.DirFS(cfg.Assets)}, cfg.Render)
	err = host.AttachRenderer(rend)
	if surface.window == nil {
		host.DetachRenderer()
		return errors.Join(errors.New("no window"), err)
	}
	defer host.Shutdown()

	host.InitGame()
	window := surface.window
	input := NewInput()
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		input.Apply(window, host)

		fbW, fbH := window.GetFramebufferSize()
		host.Resize(fbW, fbH)
		host.Tick()
		host.Frame()
	}
	log.Info("window closed", "state", host.Snapshot().State.String())
	return nil
}
