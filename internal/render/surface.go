package render

import (
	"errors"
	"fmt"
)

// ErrNoConfig is returned when a surface advertises no framebuffer config.
var ErrNoConfig = errors.New("no framebuffer config")

// FramebufferConfig describes a display configuration a surface can bind.
type FramebufferConfig struct {
	Red, Green, Blue, Alpha int
	Depth                   int
}

func (c FramebufferConfig) String() string {
	return fmt.Sprintf("R%dG%dB%dA%d D%d", c.Red, c.Green, c.Blue, c.Alpha, c.Depth)
}

// Wanted is the configuration the renderer asks for.
var Wanted = FramebufferConfig{Red: 8, Green: 8, Blue: 8, Depth: 24}

// ChooseConfig returns the first config with exactly 8-8-8 colour and a
// 24-bit depth buffer. Alpha is not considered. Order decides ties.
func ChooseConfig(configs []FramebufferConfig) (FramebufferConfig, bool) {
	for _, c := range configs {
		if c.Red == Wanted.Red && c.Green == Wanted.Green && c.Blue == Wanted.Blue && c.Depth == Wanted.Depth {
			return c, true
		}
	}
	return FramebufferConfig{}, false
}

// Surface owns the platform display, window surface and rendering context.
// All methods must be called on the thread that bound the context.
type Surface interface {
	// Configs lists the configurations the display supports, best first.
	Configs() []FramebufferConfig
	// Bind creates the surface and context for cfg and makes it current.
	Bind(cfg FramebufferConfig) (GL, error)
	Profile() Profile
	// SwapBuffers presents the back buffer; it blocks until the swap is accepted.
	SwapBuffers()
	// Release tears down context, surface and display, in that order.
	Release()
}
