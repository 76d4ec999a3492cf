//go:build android

// Package mobile runs the game inside the x/mobile app event loop.
package mobile

import (
	"os"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"firstgame/internal/audio"
	"firstgame/internal/logsink"
	"firstgame/internal/platform"
	"firstgame/internal/render"
)

// Run blocks in the app event loop. A renderer is built each time the
// activity becomes visible and released when it is hidden.
func Run() {
	app.Main(func(a app.App) {
		assets := apkAssets{}
		cfg, cfgErr := platform.LoadConfig(assets, os.LookupEnv)
		platform.SetupLogging(nil, cfg, cfgErr)
		log := logsink.For(logsink.TagPlatform)

		sound, _ := audio.New(cfg.Audio)
		defer sound.Close()

		host := platform.NewHost(cfg.Game, sound)
		host.InitGame()

		var visible bool
		var width int
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						log.Error("draw context is not a GL context")
						continue
					}
					surface := &appSurface{app: a, glctx: glctx}
					_ = host.AttachRenderer(render.NewRenderer(surface, assets, cfg.Render))
					visible = true
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					host.DetachRenderer()
					visible = false
				}
				if e.To == lifecycle.StageDead {
					host.Shutdown()
					return
				}

			case size.Event:
				width = e.WidthPx
				host.Resize(e.WidthPx, e.HeightPx)

			case touch.Event:
				if e.Type != touch.TypeBegin {
					continue
				}
				if cmd, ok := platform.CommandForTouch(e.X, width); ok {
					host.Handle(cmd)
				}

			case paint.Event:
				if !visible || e.External {
					continue
				}
				host.Tick()
				host.Frame()
				a.Send(paint.Event{})
			}
		}
	})
}
