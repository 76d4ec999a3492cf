//go:build !android

package desktop

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"firstgame/internal/config"
	"firstgame/internal/logsink"
	"firstgame/internal/render"
)

// windowSurface is a glfw window with a 4.1 core context.
type windowSurface struct {
	cfg    config.Window
	window *glfw.Window
	vao    uint32
	log    *slog.Logger

	released bool
}

func newWindowSurface(cfg config.Window) (*windowSurface, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	return &windowSurface{cfg: cfg, log: logsink.For(logsink.TagPlatform)}, nil
}

// Configs derives candidate framebuffers from the primary monitor's video
// modes, each offered with a 24-bit and a 16-bit depth buffer.
func (s *windowSurface) Configs() []render.FramebufferConfig {
	var out []render.FramebufferConfig
	seen := make(map[[3]int]bool)
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		for _, m := range mon.GetVideoModes() {
			key := [3]int{m.RedBits, m.GreenBits, m.BlueBits}
			if seen[key] {
				continue
			}
			seen[key] = true
			for _, depth := range []int{24, 16} {
				out = append(out, render.FramebufferConfig{
					Red: m.RedBits, Green: m.GreenBits, Blue: m.BlueBits, Alpha: 8, Depth: depth,
				})
			}
		}
	}
	if len(out) == 0 {
		out = append(out, render.FramebufferConfig{Red: 8, Green: 8, Blue: 8, Alpha: 8, Depth: 24})
	}
	return out
}

func (s *windowSurface) Bind(fb render.FramebufferConfig) (render.GL, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.RedBits, fb.Red)
	glfw.WindowHint(glfw.GreenBits, fb.Green)
	glfw.WindowHint(glfw.BlueBits, fb.Blue)
	glfw.WindowHint(glfw.AlphaBits, fb.Alpha)
	glfw.WindowHint(glfw.DepthBits, fb.Depth)

	window, err := glfw.CreateWindow(s.cfg.Width, s.cfg.Height, s.cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	s.window = window

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	// Core profile draws nothing without a bound vertex array.
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	s.log.Info("window created", "config", fb.String(), "width", s.cfg.Width, "height", s.cfg.Height)
	return coreGL{}, nil
}

func (s *windowSurface) Profile() render.Profile { return render.ProfileCore41 }

func (s *windowSurface) SwapBuffers() {
	if s.window != nil {
		s.window.SwapBuffers()
	}
}

// Release drops the context, destroys the window and terminates glfw.
func (s *windowSurface) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.window != nil {
		if s.vao != 0 {
			gl.BindVertexArray(0)
			gl.DeleteVertexArrays(1, &s.vao)
			s.vao = 0
		}
		glfw.DetachCurrentContext()
		s.window.Destroy()
		s.window = nil
	}
	glfw.Terminate()
}
